package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

var (
	ErrNotConfigured   = errors.New("init-data validation is not configured")
	ErrInvalidInitData = errors.New("invalid init_data")
	ErrNoUser          = errors.New("init_data carries no user")
)

type User struct {
	ID        string
	FirstName string
	LastName  string
}

// Verifier checks Mini App init-data signed by the bot token. A zero expIn
// disables the age check.
type Verifier struct {
	token string
	expIn time.Duration
}

func NewVerifier(token string, expIn time.Duration) *Verifier {
	return &Verifier{token: token, expIn: expIn}
}

func (v *Verifier) User(raw string) (User, error) {
	if v.token == "" {
		return User{}, ErrNotConfigured
	}
	if err := initdata.Validate(raw, v.token, v.expIn); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}

	parsed, err := initdata.Parse(raw)
	if err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}
	if parsed.User.ID == 0 {
		return User{}, ErrNoUser
	}
	return User{
		ID:        strconv.FormatInt(parsed.User.ID, 10),
		FirstName: parsed.User.FirstName,
		LastName:  parsed.User.LastName,
	}, nil
}
