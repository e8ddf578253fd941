package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"qr-dine/order-svc/internal/domain"
	"qr-dine/order-svc/internal/service"
)

const defaultUploadDir = "./uploads"

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Tables      service.TableServiceInterface
	Sessions    service.SessionServiceInterface
	Orders      service.OrderServiceInterface
	Payments    service.PaymentServiceInterface
	Bills       service.BillServiceInterface
	Staff       service.StaffServiceInterface
	Tokens      TokenValidator
	UploadDir   string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir())))).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")

	// diner
	r.HandleFunc("/api/menu/{slug}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{slug}/sessions", h.openSession).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}", h.closeSession).Methods("DELETE")
	r.HandleFunc("/api/sessions/{sid}/cart/lines", h.addToCart).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/cart/lines/{lineId}", h.setLineQuantity).Methods("PUT")
	r.HandleFunc("/api/sessions/{sid}/cart/lines/{lineId}", h.removeLine).Methods("DELETE")
	r.HandleFunc("/api/sessions/{sid}/checkout/proceed", h.proceed).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/checkout/details", h.submitDetails).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/checkout/payment-method", h.choosePayment).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/checkout/reference", h.submitReference).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/checkout/back", h.back).Methods("POST")
	r.HandleFunc("/api/sessions/{sid}/checkout", h.cancelCheckout).Methods("DELETE")

	r.HandleFunc("/api/sessions/{sid}/orders/{orderId:[0-9]+}", h.sessionOrder(h.getOrder)).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}/orders/{orderId:[0-9]+}/bill", h.sessionOrder(h.getBill)).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}/orders/{orderId:[0-9]+}/bill.pdf", h.sessionOrder(h.getBillPDF)).Methods("GET")
	r.HandleFunc("/api/sessions/{sid}/orders/{orderId:[0-9]+}/payment", h.sessionOrder(h.submitPayment)).Methods("POST")

	// restaurants
	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/upi-qr", h.getUPIQRCode).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.staff(ownerOnly, h.updateRestaurant)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.staff(ownerOnly, h.deleteRestaurant)).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/settings", h.staff(ownerOnly, h.updateSettings)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/image", h.staff(domain.Role.CanManageMenu, h.uploadRestaurantImage)).Methods("POST")

	// menu and tables
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu", h.staff(anyStaff, h.listMenuItems)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu", h.staff(domain.Role.CanManageMenu, h.createMenuItem)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu/{itemId:[0-9]+}", h.staff(anyStaff, h.getMenuItem)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu/{itemId:[0-9]+}", h.staff(domain.Role.CanManageMenu, h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu/{itemId:[0-9]+}", h.staff(domain.Role.CanManageMenu, h.deleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/menu/{itemId:[0-9]+}/image", h.staff(domain.Role.CanManageMenu, h.uploadMenuItemImage)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/tables", h.staff(anyStaff, h.listTables)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/tables", h.staff(domain.Role.CanManageMenu, h.createTable)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/tables/{tableId:[0-9]+}/qrcode", h.staff(anyStaff, h.getTableQRCode)).Methods("GET")

	// operations
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders", h.staff(domain.Role.CanUpdateOrders, h.listOrders)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders", h.staff(domain.Role.CanUpdateOrders, h.createCounterOrder)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders/{orderId:[0-9]+}", h.staff(anyStaff, h.getRestaurantOrder)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders/{orderId:[0-9]+}/bill", h.staff(anyStaff, h.restaurantOrder(h.getBill))).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders/{orderId:[0-9]+}/bill.pdf", h.staff(anyStaff, h.restaurantOrder(h.getBillPDF))).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders/{orderId:[0-9]+}/status", h.staff(domain.Role.CanUpdateOrders, h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/orders/{orderId:[0-9]+}/bill/paid", h.staff(domain.Role.CanVerifyPayments, h.markBillPaid)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/payments", h.staff(domain.Role.CanVerifyPayments, h.listPayments)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/payments/{paymentId:[0-9]+}/verify", h.staff(domain.Role.CanVerifyPayments, h.verifyPayment)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/payments/{paymentId:[0-9]+}/fail", h.staff(domain.Role.CanVerifyPayments, h.failPayment)).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/staff", h.staff(domain.Role.CanManageStaff, h.listStaff)).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/staff", h.staff(domain.Role.CanManageStaff, h.createStaff)).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) uploadDir() string {
	if h.UploadDir == "" {
		return defaultUploadDir
	}
	return h.UploadDir
}

func pathInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(mux.Vars(r)[name])
	return n
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON format: "+err.Error())
		return false
	}
	return true
}

type createRestaurantRequest struct {
	domain.Restaurant
	Owner service.StaffRequest `json:"owner"`
}

// createRestaurant signs a restaurant up together with its owner account.
func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req createRestaurantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rest := req.Restaurant
	if err := h.Restaurants.Create(&rest); err != nil {
		handleError(w, r, err)
		return
	}

	req.Owner.Role = domain.RoleOwner.String()
	owner, err := h.Staff.Create(rest.ID, req.Owner)
	if err != nil {
		if _, delErr := h.Restaurants.Delete(rest.ID); delErr != nil {
			log.Error().Err(delErr).Int("restaurant_id", rest.ID).Msg("failed to roll back restaurant without owner")
		}
		handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"restaurant": rest,
		"owner":      owner,
	})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(pathInt(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if !decodeJSON(w, r, &rest) {
		return
	}
	rest.ID = pathInt(r, "id")
	if err := h.Restaurants.Update(&rest); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Restaurants.Delete(pathInt(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if rows == 0 {
		writeError(w, http.StatusNotFound, "not_found", "Restaurant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.RestaurantSettings
	if !decodeJSON(w, r, &settings) {
		return
	}
	rest, err := h.Restaurants.UpdateSettings(pathInt(r, "id"), settings)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// saveUpload stores the "image" form file under the upload directory and
// returns its public URL.
func (h *Handler) saveUpload(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_upload", "File too large")
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_upload", "Error retrieving the file")
		return "", false
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		writeError(w, http.StatusBadRequest, "invalid_upload", "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
		return "", false
	}

	if err := os.MkdirAll(h.uploadDir(), 0755); err != nil {
		handleError(w, r, fmt.Errorf("create upload directory: %w", err))
		return "", false
	}

	filename := prefix + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir(), filename))
	if err != nil {
		handleError(w, r, fmt.Errorf("create upload: %w", err))
		return "", false
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		handleError(w, r, fmt.Errorf("save upload: %w", err))
		return "", false
	}
	return "/uploads/" + filename, true
}

func (h *Handler) uploadRestaurantImage(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	imageURL, ok := h.saveUpload(w, r, "restaurant_"+strconv.Itoa(id))
	if !ok {
		return
	}
	if err := h.Restaurants.UpdateImage(id, imageURL); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(pathInt(r, "id"), false)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if !decodeJSON(w, r, &item) {
		return
	}
	item.RestaurantID = pathInt(r, "id")
	if err := h.Menu.Create(&item); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(pathInt(r, "id"), pathInt(r, "itemId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if !decodeJSON(w, r, &item) {
		return
	}
	item.ID = pathInt(r, "itemId")
	item.RestaurantID = pathInt(r, "id")
	if err := h.Menu.Update(&item); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Menu.Delete(pathInt(r, "id"), pathInt(r, "itemId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if rows == 0 {
		writeError(w, http.StatusNotFound, "not_found", "Menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	restaurantID, itemID := pathInt(r, "id"), pathInt(r, "itemId")
	if _, err := h.Menu.Get(restaurantID, itemID); err != nil {
		handleError(w, r, err)
		return
	}
	imageURL, ok := h.saveUpload(w, r, fmt.Sprintf("item_%d_%d", restaurantID, itemID))
	if !ok {
		return
	}
	if err := h.Menu.UpdateImage(restaurantID, itemID, imageURL); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.List(pathInt(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if !decodeJSON(w, r, &table) {
		return
	}
	table.RestaurantID = pathInt(r, "id")
	if err := h.Tables.Create(&table); err != nil {
		handleError(w, r, err)
		return
	}
	link, err := h.Tables.MenuLink(table.RestaurantID, table.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"table":    table,
		"menu_url": link,
	})
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Tables.MenuQRCode(pathInt(r, "id"), pathInt(r, "tableId"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writePNG(w, png)
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &creds) {
		return
	}
	result, err := h.Staff.Login(creds.Email, creds.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Staff.List(pathInt(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	var req service.StaffRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	staff, err := h.Staff.Create(pathInt(r, "id"), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, staff)
}
