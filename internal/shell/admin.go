package shell

import (
	"context"
	"strings"

	"czone-store/internal/product"
	"czone-store/internal/storefront"
)

const (
	invalidPriceAndQuantity = "Invalid input. Please enter valid numeric values for price and quantity."
	invalidProductID        = "Invalid input. Please enter a numeric value for product ID."
)

func (s *Shell) adminMenu(ctx context.Context, sess *storefront.AdminSession) error {
	for {
		s.clearScreen()
		s.printMenu(s.colors.admin, "Admin Menu:",
			"Add Product",
			"Remove Product",
			"Update Product Info",
			"View All Products",
			"Logout",
		)

		choice, err := s.ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addProduct(ctx, sess)
		case "2":
			err = s.removeProduct(ctx, sess)
		case "3":
			err = s.updateProduct(ctx, sess)
		case "4":
			s.show(sess.ListAll(ctx))
		case "5":
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

func (s *Shell) addProduct(ctx context.Context, sess *storefront.AdminSession) error {
	name, err := s.ask("Enter product name: ")
	if err != nil {
		return err
	}

	price, err := s.askDecimal("Enter product price: ", invalidPriceAndQuantity)
	if err != nil {
		return err
	}
	qty, err := s.askInt("Enter product quantity: ", invalidPriceAndQuantity)
	if err != nil {
		return err
	}
	description, err := s.ask("Enter product description: ")
	if err != nil {
		return err
	}

	s.report(ctx, sess.AddProduct(ctx, product.NewProductParams{
		Name:        name,
		Price:       price,
		Description: description,
		Quantity:    qty,
	}))
	return nil
}

func (s *Shell) removeProduct(ctx context.Context, sess *storefront.AdminSession) error {
	s.show(sess.ListAll(ctx))

	id, err := s.askInt("Enter product ID to remove: ", invalidProductID)
	if err != nil {
		return err
	}
	s.report(ctx, sess.RemoveProduct(ctx, id))
	return nil
}

// updateProduct asks for each field; a blank answer keeps the current value.
func (s *Shell) updateProduct(ctx context.Context, sess *storefront.AdminSession) error {
	s.show(sess.ListAll(ctx))

	id, err := s.askInt("Enter product ID to update: ", invalidProductID)
	if err != nil {
		return err
	}
	if res := s.store.ViewProduct(ctx, id); !res.OK() {
		s.fail(res.Message)
		return nil
	}

	var params product.UpdateProductParams

	name, err := s.ask("Enter new name (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) != "" {
		params.Name = &name
	}
	if params.Price, err = s.askOptionalDecimal("Enter new price (leave blank to keep current): ", invalidPriceAndQuantity); err != nil {
		return err
	}
	description, err := s.ask("Enter new description (leave blank to keep current): ")
	if err != nil {
		return err
	}
	if description != "" {
		params.Description = &description
	}
	if params.Quantity, err = s.askOptionalInt("Enter new quantity (leave blank to keep current): ", invalidPriceAndQuantity); err != nil {
		return err
	}

	s.report(ctx, sess.UpdateProduct(ctx, id, params))
	return nil
}
