package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	digitsOnly  = regexp.MustCompile(`^[0-9]+$`)
	maxTaxRate  = decimal.NewFromInt(100)
)

func invalid(field, message string) error {
	return checkout.ValidationError{Field: field, Message: message}
}

func validateTax(tax domain.TaxConfiguration) error {
	if tax.CGSTRate.IsNegative() || tax.CGSTRate.GreaterThan(maxTaxRate) {
		return invalid("cgst_rate", "must be between 0 and 100")
	}
	if tax.SGSTRate.IsNegative() || tax.SGSTRate.GreaterThan(maxTaxRate) {
		return invalid("sgst_rate", "must be between 0 and 100")
	}
	return nil
}

type RestaurantService struct {
	repo RestaurantRepository
	qr   QRGenerator
}

func NewRestaurantService(repo RestaurantRepository, qr QRGenerator) *RestaurantService {
	return &RestaurantService{repo: repo, qr: qr}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	rest.Slug = strings.ToLower(strings.TrimSpace(rest.Slug))
	rest.Name = strings.TrimSpace(rest.Name)
	if rest.Name == "" {
		return invalid("name", "restaurant name is required")
	}
	// Numeric slugs would be indistinguishable from restaurant ids in URLs.
	if !slugPattern.MatchString(rest.Slug) || digitsOnly.MatchString(rest.Slug) {
		return invalid("slug", "use lowercase letters, digits and hyphens")
	}
	if err := validateTax(rest.Tax); err != nil {
		return err
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) GetBySlug(slug string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurantBySlug(strings.ToLower(slug))
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return invalid("name", "restaurant name is required")
	}
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) UpdateSettings(id int, settings domain.RestaurantSettings) (*domain.Restaurant, error) {
	if err := validateTax(settings.Tax); err != nil {
		return nil, err
	}
	settings.UPIID = strings.TrimSpace(settings.UPIID)
	return s.repo.UpdateRestaurantSettings(id, settings)
}

func (s *RestaurantService) Delete(id int) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

func (s *RestaurantService) UpdateImage(id int, imageURL string) error {
	return s.repo.UpdateRestaurantImage(id, imageURL)
}

// UPIQRCode renders the payment QR a diner scans on the pay-online step.
func (s *RestaurantService) UPIQRCode(id int, amount decimal.Decimal) ([]byte, error) {
	if !amount.IsPositive() {
		return nil, invalid("amount", "must be greater than zero")
	}
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, err
	}
	if rest.UPIID == "" {
		return nil, ErrUPINotConfigured
	}
	return s.qr.UPIPayment(rest.UPIID, rest.Name, amount)
}

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func validateMenuItem(item *domain.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if item.Name == "" {
		return invalid("name", "item name is required")
	}
	if item.Price.IsNegative() {
		return invalid("price", "must not be negative")
	}
	seen := make(map[string]bool, len(item.Variants))
	for _, v := range item.Variants {
		key := strings.ToLower(strings.TrimSpace(v.Name))
		if key == "" || v.Price.IsNegative() {
			return invalid("variants", fmt.Sprintf("variant %q needs a name and a non-negative price", v.Name))
		}
		if seen[key] {
			return invalid("variants", fmt.Sprintf("variant %q is listed twice", v.Name))
		}
		seen[key] = true
	}
	for _, a := range item.AddOns {
		if strings.TrimSpace(a.Name) == "" || a.Price.IsNegative() {
			return invalid("add_ons", fmt.Sprintf("add-on %q needs a name and a non-negative price", a.Name))
		}
	}
	return nil
}

func (s *MenuService) Create(item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(item)
}

func (s *MenuService) List(restaurantID int, onlyAvailable bool) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(restaurantID, onlyAvailable)
}

func (s *MenuService) Get(restaurantID, itemID int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(restaurantID, itemID)
}

func (s *MenuService) Update(item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(item)
}

func (s *MenuService) Delete(restaurantID, itemID int) (int64, error) {
	return s.repo.DeleteMenuItem(restaurantID, itemID)
}

func (s *MenuService) UpdateImage(restaurantID, itemID int, imageURL string) error {
	return s.repo.UpdateMenuItemImage(restaurantID, itemID, imageURL)
}

type TableService struct {
	tables      TableRepository
	restaurants RestaurantRepository
	qr          QRGenerator
}

func NewTableService(tables TableRepository, restaurants RestaurantRepository, qr QRGenerator) *TableService {
	return &TableService{tables: tables, restaurants: restaurants, qr: qr}
}

func (s *TableService) Create(table *domain.Table) error {
	table.Label = strings.TrimSpace(table.Label)
	if table.Label == "" {
		return invalid("label", "table label is required")
	}
	if _, err := s.restaurants.GetRestaurant(table.RestaurantID); err != nil {
		return err
	}
	return s.tables.CreateTable(table)
}

func (s *TableService) List(restaurantID int) ([]domain.Table, error) {
	return s.tables.ListTables(restaurantID)
}

func (s *TableService) lookup(restaurantID, tableID int) (*domain.Restaurant, *domain.Table, error) {
	table, err := s.tables.GetTable(restaurantID, tableID)
	if err != nil {
		return nil, nil, err
	}
	rest, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		return nil, nil, err
	}
	return rest, table, nil
}

func (s *TableService) MenuQRCode(restaurantID, tableID int) ([]byte, error) {
	rest, table, err := s.lookup(restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	return s.qr.TableMenu(rest.Slug, table.ID)
}

func (s *TableService) MenuLink(restaurantID, tableID int) (string, error) {
	rest, table, err := s.lookup(restaurantID, tableID)
	if err != nil {
		return "", err
	}
	return s.qr.MenuURL(rest.Slug, table.ID), nil
}
