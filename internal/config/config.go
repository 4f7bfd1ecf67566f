package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	errEnvVarNotFound error = errors.New("environment variable not found")
	errInvalidEnvVar  error = errors.New("invalid environment variable")
)

const (
	apiPortEnvKey         = "API_PORT"
	dbDriverEnvKey        = "DB_DRIVER"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	dbDebugEnvKey         = "DB_DEBUG"
	jwtSecretEnvKey       = "JWT_SECRET"
	simulatorAuthEnvKey   = "SIMULATOR_AUTH"
	allowSelfFollowEnvKey = "ALLOW_SELF_FOLLOW"
	bcryptCostEnvKey      = "BCRYPT_COST"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	DBDebug         bool
	JWTSecret       string
	// SimulatorAuth is the expected Authorization header value; empty disables the check.
	SimulatorAuth   string
	AllowSelfFollow bool
	BcryptCost      int
}

// NewApp loads the application config from the environment. A .env file in
// the working directory is read first when present.
func NewApp() (App, error) {
	_ = godotenv.Load(".env")

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	driver := DriverPostgres
	if v, ok := os.LookupEnv(dbDriverEnvKey); ok {
		if v != DriverPostgres && v != DriverSQLite {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, dbDriverEnvKey, v)
		}
		driver = v
	}

	dbDebug, err := lookupBool(dbDebugEnvKey, false)
	if err != nil {
		return App{}, err
	}

	allowSelfFollow, err := lookupBool(allowSelfFollowEnvKey, false)
	if err != nil {
		return App{}, err
	}

	cost := bcrypt.DefaultCost
	if v, ok := os.LookupEnv(bcryptCostEnvKey); ok {
		cost, err = strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return App{}, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, bcryptCostEnvKey, v)
		}
	}

	return App{
		Port:            port,
		DBDriver:        driver,
		DBConnectionURL: dbConn,
		DBDebug:         dbDebug,
		JWTSecret:       jwtSecret,
		SimulatorAuth:   os.Getenv(simulatorAuthEnvKey),
		AllowSelfFollow: allowSelfFollow,
		BcryptCost:      cost,
	}, nil
}

func lookupBool(key string, def bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", errInvalidEnvVar, key, v)
	}
	return b, nil
}
