package service

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"qr-dine/order-svc/internal/billing"
	"qr-dine/order-svc/internal/checkout"
	"qr-dine/order-svc/internal/domain"
)

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetRestaurantBySlug(slug string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	UpdateRestaurantSettings(id int, settings domain.RestaurantSettings) (*domain.Restaurant, error)
	DeleteRestaurant(id int) (int64, error)
	UpdateRestaurantImage(id int, imageURL string) error
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID int, onlyAvailable bool) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) (int64, error)
	UpdateMenuItemImage(restaurantID, itemID int, imageURL string) error
}

type TableRepository interface {
	CreateTable(table *domain.Table) error
	ListTables(restaurantID int) ([]domain.Table, error)
	GetTable(restaurantID, tableID int) (*domain.Table, error)
}

type OrderRepository interface {
	PlaceOrder(order *domain.Order, payment *domain.Payment) (bool, error)
	GetOrder(id int) (*domain.Order, error)
	ListOrders(restaurantID int, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrderStatus(id int, from, to domain.OrderStatus, bill *domain.Bill) error
}

type PaymentRepository interface {
	CreatePayment(p *domain.Payment) error
	GetPayment(id int) (*domain.Payment, error)
	GetPaymentByOrder(orderID int) (*domain.Payment, error)
	ListPayments(restaurantID int, status domain.PaymentStatus) ([]domain.Payment, error)
	ReviewPayment(id int, status domain.PaymentStatus) (*domain.Payment, error)
}

type BillRepository interface {
	GetBillByOrder(orderID int) (*domain.Bill, error)
	MarkBillPaid(orderID int) (*domain.Bill, error)
}

type StaffRepository interface {
	CreateStaff(staff *domain.Staff) error
	GetStaffByEmail(email string) (*domain.Staff, error)
	ListStaff(restaurantID int) ([]domain.Staff, error)
}

type SessionStore interface {
	SaveSession(ctx context.Context, s *checkout.Session) error
	LoadSession(ctx context.Context, id string) (*checkout.Session, error)
	DeleteSession(ctx context.Context, id string) error
	AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

type IdempotencyCache interface {
	RememberOrder(ctx context.Context, restaurantID int, key string, orderID int) error
	LookupOrder(ctx context.Context, restaurantID int, key string) (int, bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type TokenIssuer interface {
	Issue(staff domain.Staff) (string, time.Time, error)
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
	GetBySlug(slug string) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	UpdateSettings(id int, settings domain.RestaurantSettings) (*domain.Restaurant, error)
	Delete(id int) (int64, error)
	UpdateImage(id int, imageURL string) error
	UPIQRCode(id int, amount decimal.Decimal) ([]byte, error)
}

type MenuServiceInterface interface {
	Create(item *domain.MenuItem) error
	List(restaurantID int, onlyAvailable bool) ([]domain.MenuItem, error)
	Get(restaurantID, itemID int) (*domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(restaurantID, itemID int) (int64, error)
	UpdateImage(restaurantID, itemID int, imageURL string) error
}

type TableServiceInterface interface {
	Create(table *domain.Table) error
	List(restaurantID int) ([]domain.Table, error)
	MenuQRCode(restaurantID, tableID int) ([]byte, error)
	MenuLink(restaurantID, tableID int) (string, error)
}

type SessionServiceInterface interface {
	Open(ctx context.Context, slug string, tableID *int) (*SessionView, error)
	Get(ctx context.Context, id string) (*SessionView, error)
	AddToCart(ctx context.Context, id string, req AddToCartRequest) (*AddToCartResult, error)
	SetQuantity(ctx context.Context, id, lineID string, quantity int) (*SessionView, error)
	Proceed(ctx context.Context, id string) (*SessionView, error)
	SubmitDetails(ctx context.Context, id string, details checkout.CustomerDetails) (*SessionView, error)
	ChoosePayment(ctx context.Context, id string, method domain.PaymentMethod) (*SessionView, error)
	SubmitReference(ctx context.Context, id, reference string) (*SessionView, error)
	Back(ctx context.Context, id string) (*SessionView, error)
	CancelCheckout(ctx context.Context, id string) (*SessionView, error)
	AuthorizeOrder(ctx context.Context, id string, orderID int) error
	Close(ctx context.Context, id string) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, cmd domain.PlaceOrderCommand) (*domain.Order, error)
	PlaceCounterOrder(ctx context.Context, restaurantID int, req CounterOrderRequest) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List(restaurantID int, status domain.OrderStatus) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, restaurantID, orderID int, to domain.OrderStatus) (*domain.Order, error)
	SubmitPayment(ctx context.Context, orderID int, reference string) (*domain.Payment, error)
}

type PaymentServiceInterface interface {
	List(restaurantID int, status domain.PaymentStatus) ([]domain.Payment, error)
	Review(ctx context.Context, restaurantID, paymentID int, status domain.PaymentStatus) (*domain.Payment, error)
}

type BillServiceInterface interface {
	Receipt(orderID int) (*billing.Receipt, error)
	WritePDF(orderID int, w io.Writer) error
	MarkPaid(ctx context.Context, restaurantID, orderID int) (*domain.Bill, error)
}

type StaffServiceInterface interface {
	Login(email, password string) (*LoginResult, error)
	Create(restaurantID int, req StaffRequest) (*domain.Staff, error)
	List(restaurantID int) ([]domain.Staff, error)
}

var (
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ MenuServiceInterface       = (*MenuService)(nil)
	_ TableServiceInterface      = (*TableService)(nil)
	_ SessionServiceInterface    = (*SessionService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ PaymentServiceInterface    = (*PaymentService)(nil)
	_ BillServiceInterface       = (*BillService)(nil)
	_ StaffServiceInterface      = (*StaffService)(nil)
)
