package v1

import (
	"contact-book-backend/internal/delivery/http/response"
	"contact-book-backend/internal/domain"
	"contact-book-backend/pkg/apperror"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	contacts := api.Group("/contacts")
	{
		contacts.GET("", handler.List)
		contacts.POST("", handler.Create)
		contacts.GET("/:id", handler.Get)
		contacts.PUT("/:id", handler.Update)
		contacts.DELETE("/:id", handler.Delete)
	}
}

// ContactRequest is the body of create and update. All fields are required.
type ContactRequest struct {
	Name  string `json:"name" example:"Alice Doe"`
	Email string `json:"email" example:"alice@example.com"`
	Phone string `json:"phone" example:"5551234567"`
}

// bindContact decodes the body. An empty body decodes to empty fields so the
// required-fields check reports it.
func bindContact(c *gin.Context) (ContactRequest, bool) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return req, false
	}
	return req, true
}

func (r ContactRequest) input() domain.ContactInput {
	return domain.ContactInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

// ListContacts godoc
// @Summary      List contacts
// @Description  List all contacts ordered by name, optionally filtered by a case-insensitive name search
// @Tags         contacts
// @Produce      json
// @Param        search  query     string  false  "Substring of the contact name"
// @Success      200     {array}   domain.Contact
// @Failure      500     {object}  response.Response
// @Router       /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactUC.ListContacts(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact godoc
// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contacts/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.contactUC.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// CreateContact godoc
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contact  body      ContactRequest  true  "Contact JSON"
// @Success      201      {object}  domain.Contact
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	req, ok := bindContact(c)
	if !ok {
		return
	}

	contact, err := h.contactUC.CreateContact(c.Request.Context(), req.input())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// UpdateContact godoc
// @Summary      Replace a contact
// @Description  Full replacement: name, email and phone are all required
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Contact ID"
// @Param        contact  body      ContactRequest  true  "Contact JSON"
// @Success      200      {object}  domain.Contact
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contacts/{id} [put]
func (h *ContactHandler) Update(c *gin.Context) {
	req, ok := bindContact(c)
	if !ok {
		return
	}

	contact, err := h.contactUC.UpdateContact(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact godoc
// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactUC.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Contact deleted successfully", nil)
}
