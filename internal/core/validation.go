package core

import (
	"regexp"

	"github.com/jellydator/validation"
)

const (
	msgUsernameRequired = "You have to enter a username"
	msgEmailInvalid     = "You have to enter a valid email address"
	msgPasswordRequired = "You have to enter a password"
	msgUsernameTaken    = "The username is already taken"
	msgPasswordTooLong  = "Your password must be at most 72 bytes"

	msgUserUnknown         = "Username does not match a user"
	msgIncorrectCredential = "Incorrect password or username"

	msgFollowTarget     = "Target user does not exist"
	msgFollowUnknown    = "User to follow does not exist"
	msgUnfollowUnknown  = "User to unfollow does not exist"
	msgFollowSelf       = "You cannot follow yourself"
	msgNotFollowing     = "You are not following this user"
	msgFollowAmbiguous  = "You have to provide either follow or unfollow"
	msgUserDoesNotExist = "User does not exist"
	msgMessageRequired  = "You have to enter a message"
)

var emailPattern = regexp.MustCompile(`@`)

// field pairs a value with the rules it must satisfy.
type field struct {
	value any
	rules []validation.Rule
}

// firstError validates fields in order and reports only the first failure.
func firstError(fields ...field) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			return Validation(err.Error())
		}
	}
	return nil
}

func validateRegistration(msg RegisterMessage) error {
	return firstError(
		field{msg.Username, []validation.Rule{validation.Required.Error(msgUsernameRequired)}},
		field{msg.Email, []validation.Rule{
			validation.Required.Error(msgEmailInvalid),
			validation.Match(emailPattern).Error(msgEmailInvalid),
		}},
		field{msg.Password, []validation.Rule{validation.Required.Error(msgPasswordRequired)}},
	)
}

func validateFollow(msg FollowMessage) error {
	hasFollow := msg.Follow != ""
	return firstError(
		field{msg.Follow, []validation.Rule{
			validation.Required.When(msg.Unfollow == "").Error(msgFollowAmbiguous),
			validation.Empty.When(msg.Unfollow != "").Error(msgFollowAmbiguous),
		}},
		field{msg.Unfollow, []validation.Rule{
			validation.Required.When(!hasFollow).Error(msgFollowAmbiguous),
		}},
	)
}

func validatePost(msg PostMessage) error {
	return firstError(
		field{msg.Content, []validation.Rule{validation.Required.Error(msgMessageRequired)}},
	)
}
