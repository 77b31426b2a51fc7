package shell

import (
	"context"
	"strings"

	"czone-store/internal/storefront"
)

const invalidIDAndQuantity = "Invalid input. Please enter numeric values for product ID and quantity."

func (s *Shell) customerMenu(ctx context.Context, sess *storefront.CustomerSession) error {
	for {
		s.clearScreen()
		s.printMenu(s.colors.customer, "Customer Menu:",
			"View Cart",
			"View Products",
			"Add Product to Cart",
			"Remove Product from Cart",
			"Checkout",
			"View Shopping History",
			"Logout",
		)

		choice, err := s.ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.show(sess.ViewCart(ctx))
		case "2":
			s.show(sess.ViewProducts(ctx))
		case "3":
			err = s.addToCart(ctx, sess)
		case "4":
			err = s.removeFromCart(ctx, sess)
		case "5":
			s.report(ctx, sess.Checkout(ctx))
		case "6":
			s.show(sess.ViewHistory(ctx))
		case "7":
			return nil
		default:
			s.fail(invalidChoice)
		}
		if err != nil {
			return err
		}
		if err := s.waitForEnter(); err != nil {
			return err
		}
	}
}

func (s *Shell) addToCart(ctx context.Context, sess *storefront.CustomerSession) error {
	for {
		s.show(sess.ViewProducts(ctx))

		id, err := s.askInt("Enter product ID to add: ", invalidIDAndQuantity)
		if err != nil {
			return err
		}
		qty, err := s.askInt("Enter quantity: ", invalidIDAndQuantity)
		if err != nil {
			return err
		}
		s.report(ctx, sess.AddToCart(ctx, id, qty))

		more, err := s.askYesNo("Do you want to add more products? (yes/no): ")
		if err != nil || !more {
			return err
		}
	}
}

func (s *Shell) removeFromCart(ctx context.Context, sess *storefront.CustomerSession) error {
	for {
		s.show(sess.ViewCart(ctx))

		id, err := s.askInt("Enter product ID to remove: ", invalidIDAndQuantity)
		if err != nil {
			return err
		}
		qty, err := s.askOptionalInt("Enter quantity to remove (leave blank to remove all): ", invalidIDAndQuantity)
		if err != nil {
			return err
		}
		s.report(ctx, sess.RemoveFromCart(ctx, id, qty))

		more, err := s.askYesNo("Do you want to remove more products? (yes/no): ")
		if err != nil || !more {
			return err
		}
	}
}
