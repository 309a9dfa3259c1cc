package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/services"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type AuthHandler struct {
	base
	authSvc  *services.AuthService
	validate *validator.Validate
}

func NewAuthHandler(r *render.Render, registry *stores.Registry, authSvc *services.AuthService, validate *validator.Validate, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		base:     base{render: r, registry: registry, log: log},
		authSvc:  authSvc,
		validate: validate,
	}
}

func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	h.ok(w, set.Session.State())
}

type modalForm struct {
	View string `json:"view"`
}

func (h *AuthHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	var form modalForm
	_ = json.NewDecoder(r.Body).Decode(&form)
	_, set := h.visitorSet(r)
	set.Session.OpenModal(stores.AuthView(form.View))
	h.ok(w, set.Session.State())
}

func (h *AuthHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Session.CloseModal()
	h.ok(w, set.Session.State())
}

func (h *AuthHandler) SetModalView(w http.ResponseWriter, r *http.Request) {
	var form modalForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	_, set := h.visitorSet(r)
	set.Session.SetView(stores.AuthView(form.View))
	h.ok(w, set.Session.State())
}

type otpRequestForm struct {
	Destination string `json:"destination" validate:"required"`
}

func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var form otpRequestForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if err := h.authSvc.RequestOTP(r.Context(), form.Destination); err != nil {
		h.fail(w, http.StatusBadGateway, err)
		return
	}
	h.ok(w, map[string]interface{}{
		"sent":           true,
		"resend_seconds": services.OTPResendSeconds,
	})
}

type otpLoginForm struct {
	Destination string `json:"destination" validate:"required"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

func (h *AuthHandler) LoginWithOTP(w http.ResponseWriter, r *http.Request) {
	var form otpLoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	_, set := h.visitorSet(r)
	user, err := h.authSvc.LoginWithOTP(r.Context(), set.Session, form.Destination, form.Code)
	if err != nil {
		h.fail(w, http.StatusBadGateway, err)
		return
	}
	h.ok(w, user)
}

type passwordLoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) LoginWithPassword(w http.ResponseWriter, r *http.Request) {
	var form passwordLoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	_, set := h.visitorSet(r)
	user, err := h.authSvc.LoginWithPassword(r.Context(), set.Session, form.Email, form.Password)
	if err != nil {
		h.fail(w, http.StatusBadGateway, err)
		return
	}
	h.ok(w, user)
}

type signupForm struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var form signupForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	_, set := h.visitorSet(r)
	user, err := h.authSvc.Signup(r.Context(), set.Session, form.Name, form.Email, form.Phone, form.Password)
	if err != nil {
		h.fail(w, http.StatusBadGateway, err)
		return
	}
	h.created(w, user)
}

type resetForm struct {
	Destination string `json:"destination" validate:"required"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var form resetForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	_, set := h.visitorSet(r)
	if err := h.authSvc.ResetPassword(r.Context(), set.Session, form.Destination, form.Code, form.NewPassword); err != nil {
		h.fail(w, http.StatusBadGateway, err)
		return
	}
	h.ok(w, map[string]bool{"reset": true})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	set.Session.Logout()
	h.ok(w, set.Session.State())
}

type profileForm struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var form profileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	_, set := h.visitorSet(r)
	set.Session.UpdateProfile(stores.ProfileUpdate{
		Name:   form.Name,
		Email:  form.Email,
		Phone:  form.Phone,
		Avatar: form.Avatar,
	})
	h.ok(w, set.Session.State())
}

type addressForm struct {
	Type      string `json:"type"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	Pincode   string `json:"pincode" validate:"required,len=6,numeric"`
	IsDefault bool   `json:"is_default"`
}

func (h *AuthHandler) AddAddress(w http.ResponseWriter, r *http.Request) {
	var form addressForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if err := h.validate.Struct(form); err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	if form.Type == "" {
		form.Type = models.AddressTypeHome
	}
	_, set := h.visitorSet(r)
	set.Session.AddAddress(models.Address{
		ID:        uuid.New().String(),
		Type:      form.Type,
		Name:      form.Name,
		Phone:     form.Phone,
		Address:   form.Address,
		City:      form.City,
		Pincode:   form.Pincode,
		IsDefault: form.IsDefault,
	})
	h.created(w, set.Session.State())
}

func (h *AuthHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	var form addressForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.fail(w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	id := mux.Vars(r)["id"]
	_, set := h.visitorSet(r)
	set.Session.UpdateAddress(id, models.Address{
		Type:      form.Type,
		Name:      form.Name,
		Phone:     form.Phone,
		Address:   form.Address,
		City:      form.City,
		Pincode:   form.Pincode,
		IsDefault: form.IsDefault,
	})
	h.ok(w, set.Session.State())
}

func (h *AuthHandler) RemoveAddress(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	_, set := h.visitorSet(r)
	set.Session.RemoveAddress(id)
	h.ok(w, set.Session.State())
}

func (h *AuthHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	_, set := h.visitorSet(r)
	user := set.Session.User()
	if user == nil {
		h.ok(w, map[string]interface{}{"orders": []models.Order{}})
		return
	}
	h.ok(w, map[string]interface{}{
		"orders":         user.Orders,
		"loyalty_points": user.LoyaltyPoints,
	})
}
