package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const invalidChoice = "Invalid choice"

func (s *Shell) printMenu(c *color.Color, heading string, options ...string) {
	s.println("\n" + heading)
	for i, opt := range options {
		fmt.Fprintln(s.out, c.Sprintf("%d. %s", i+1, opt))
	}
}

func (s *Shell) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.clearScreen()
		fmt.Fprintln(s.out, s.colors.title.Sprint("WELCOME TO C-ZONE"))
		fmt.Fprintln(s.out, s.colors.title.Sprint("ENJOY YOUR STAY HERE!"))
		s.printMenu(s.colors.main, "Main Menu:",
			"Create Customer Account",
			"Login as Customer",
			"Login as Admin",
			"View Store Products",
			"Exit",
		)

		choice, err := s.ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.signup(ctx)
		case "2":
			err = s.customerLogin(ctx)
		case "3":
			err = s.adminLogin(ctx)
		case "4":
			s.show(s.store.ListAll(ctx))
			err = s.waitForEnter()
		case "5":
			s.println("Goodbye!")
			return nil
		default:
			s.fail(invalidChoice)
			err = s.waitForEnter()
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) customerLogin(ctx context.Context) error {
	username, err := s.ask("Enter username: ")
	if err != nil {
		return err
	}
	password, err := s.ask("Enter password: ")
	if err != nil {
		return err
	}

	sess, res := s.store.CustomerLogin(ctx, strings.TrimSpace(username), password)
	s.report(ctx, res)
	if err := s.waitForEnter(); err != nil {
		return err
	}
	if sess == nil {
		return nil
	}
	return s.customerMenu(ctx, sess)
}

func (s *Shell) adminLogin(ctx context.Context) error {
	username, err := s.ask("Enter admin username: ")
	if err != nil {
		return err
	}
	password, err := s.ask("Enter admin password: ")
	if err != nil {
		return err
	}

	sess, res := s.store.AdminLogin(ctx, strings.TrimSpace(username), password)
	s.report(ctx, res)
	if err := s.waitForEnter(); err != nil {
		return err
	}
	if sess == nil {
		return nil
	}
	return s.adminMenu(ctx, sess)
}
