package repository

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email    string `gorm:"type:varchar(255);not null"`
	PwHash   string `gorm:"column:pw_hash;not null"`
}

type Message struct {
	ID       uint   `gorm:"primaryKey"`
	AuthorID uint   `gorm:"not null;index"`
	Author   User   `gorm:"foreignKey:AuthorID"`
	Text     string `gorm:"type:text;not null"`
	PubDate  int64  `gorm:"not null;index"` // unix seconds
	Flagged  bool   `gorm:"not null;default:false"`
}

// Follower is a follow edge: Who follows Whom.
type Follower struct {
	WhoID  uint `gorm:"primaryKey;autoIncrement:false"`
	Who    User `gorm:"foreignKey:WhoID"`
	WhomID uint `gorm:"primaryKey;autoIncrement:false;index"`
	Whom   User `gorm:"foreignKey:WhomID"`
}

// Latest holds the last command id reported by the simulator in a single row.
type Latest struct {
	ID    uint `gorm:"primaryKey;autoIncrement:false"`
	Value int  `gorm:"not null"`
}

const latestRowID = 1
