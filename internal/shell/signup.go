package shell

import (
	"context"
	"strings"

	"czone-store/internal/user"
)

// signup collects each field until it validates, then creates the account.
func (s *Shell) signup(ctx context.Context) error {
	var params user.RegisterParams

	for {
		name, err := s.ask("Enter username: ")
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)
		if res := s.store.CheckUsername(ctx, name); !res.OK() {
			s.fail(res.Message)
			continue
		}
		params.Username = name
		break
	}

	for {
		password, err := s.ask("Enter password: ")
		if err != nil {
			return err
		}
		if err := user.ValidatePassword(password); err != nil {
			s.fail("Invalid password: " + err.Error())
			continue
		}
		params.Password = password
		break
	}

	var err error
	if params.FirstName, err = s.askName("first_name", "Enter first name: "); err != nil {
		return err
	}
	if params.LastName, err = s.askName("last_name", "Enter last name: "); err != nil {
		return err
	}
	if params.Address, err = s.ask("Enter address: "); err != nil {
		return err
	}

	s.report(ctx, s.store.CreateCustomerAccount(ctx, params))
	return s.waitForEnter()
}

func (s *Shell) askName(field, prompt string) (string, error) {
	for {
		value, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		if err := user.ValidateName(field, value); err != nil {
			s.fail(err.Error())
			continue
		}
		return strings.TrimSpace(value), nil
	}
}
