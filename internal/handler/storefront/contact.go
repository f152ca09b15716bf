package storefront

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/trahman/smartshop/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// Contact handles POST /contact. Messages are acknowledged but not
// persisted anywhere.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		respondError(w, r, contactValidationError(err))
		return
	}

	h.logger.Info("contact message received",
		"name", req.Name,
		"email", req.Email,
	)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Message sent successfully!",
	})
}

// contactValidationError turns the first field failure into a client
// facing message.
func contactValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.Errorf(domain.EINVALID, "storefront.contact", "invalid contact form")
	}

	fe := errs[0]
	switch fe.Field() {
	case "Name":
		return domain.Errorf(domain.EINVALID, "storefront.contact", "name must be between 2 and 100 characters")
	case "Email":
		return domain.Errorf(domain.EINVALID, "storefront.contact", "a valid email address is required")
	case "Message":
		return domain.Errorf(domain.EINVALID, "storefront.contact", "message must be between 10 and 2000 characters")
	default:
		return domain.Errorf(domain.EINVALID, "storefront.contact", "invalid contact form")
	}
}
