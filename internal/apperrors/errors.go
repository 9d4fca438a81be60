// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error is the closed set of domain failures. Every kind maps exactly once
// to a transport status and an exposability flag: Expose=true messages are
// safe to return to clients, Expose=false ones are replaced by a generic
// message at the transport layer.
type Error struct {
	Code    string
	Message string
	Status  int
	Expose  bool
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func notFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusNotFound, Expose: true}
}

func badRequest(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusBadRequest, Expose: true}
}

func internal(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusInternalServerError, Expose: false, cause: cause}
}

// Checkout / orders

func EmptyCart() *Error {
	return badRequest("ORDER_EMPTY_CART", "No hay productos en el carrito")
}

func ShippingAddressNotFound() *Error {
	return notFound("ORDER_SHIPPING_NOT_FOUND", "Direccion de envio no encontrada")
}

func BillingProfileNotFound() *Error {
	return notFound("ORDER_BILLING_NOT_FOUND", "Dato de facturacion no encontrado")
}

func OrderNumberGenerationFailed() *Error {
	return badRequest("ORDER_NUMBER_GENERATION_FAILED", "No se pudo generar un numero de pedido unico")
}

func OrderNotFound() *Error {
	return notFound("ORDER_NOT_FOUND", "Pedido no encontrado")
}

// Cart

func CartProductNotFound() *Error {
	return notFound("CART_PRODUCT_NOT_FOUND", "Producto no encontrado")
}

func CartItemNotFound() *Error {
	return notFound("CART_ITEM_NOT_FOUND", "Item no encontrado en el carrito")
}

// Catalog

func ProductNotFound(param string) *Error {
	return notFound("PRODUCT_NOT_FOUND", fmt.Sprintf("No se encontro el producto: '%s'", param))
}

func CategoryNotFound(id string) *Error {
	return notFound("CATEGORY_NOT_FOUND", fmt.Sprintf("No se encontro la categoria con id: '%s'", id))
}

func CategoryConflict(name string) *Error {
	return badRequest("CATEGORY_CONFLICT", fmt.Sprintf("Ya existe una categoria con el nombre '%s'", name))
}

func CategoryFeaturedLimit(max int) *Error {
	return badRequest("CATEGORY_FEATURED_LIMIT",
		fmt.Sprintf("Solo se permiten %d categorias destacadas. Desmarca otra antes de crear o actualizar una nueva.", max))
}

func TagNotFound() *Error {
	return notFound("TAG_NOT_FOUND", "Algunos tags no existen en la base de datos")
}

func ProductsByTagNotFound(tag string) *Error {
	return notFound("PRODUCT_NOT_FOUND", fmt.Sprintf("No se encontraron productos con el tag '%s'", tag))
}

func PromotionNotFound(id string) *Error {
	return notFound("PROMOTION_NOT_FOUND", fmt.Sprintf("No se encontro la promocion con id: '%s'", id))
}

// Account

func AddressNotFound() *Error {
	return notFound("ADDRESS_NOT_FOUND", "Direccion no encontrada")
}

func BillingNotFound() *Error {
	return notFound("BILLING_NOT_FOUND", "Dato de facturacion no encontrado")
}

func UserNotFound() *Error {
	return notFound("USER_NOT_FOUND", "No existe el usuario solicitado")
}

func EmailAlreadyRegistered() *Error {
	return badRequest("AUTH_EMAIL_TAKEN", "Ya existe un usuario con ese email")
}

func InvalidCredentials() *Error {
	return &Error{
		Code:    "AUTH_INVALID_CREDENTIALS",
		Message: "Las credenciales no son validas",
		Status:  http.StatusUnauthorized,
		Expose:  true,
	}
}

// Recipes

func RecipeNotFound() *Error {
	return notFound("RECIPE_NOT_FOUND", "Receta no encontrada")
}

func IngredientNotFound() *Error {
	return notFound("INGREDIENT_NOT_FOUND", "Algunos ingredientes no existen en la base de datos")
}

// Mail

func MailNotConfigured(detail string) *Error {
	return internal("MAIL_NOT_CONFIGURED", detail, nil)
}

func MailSendFailed(cause error) *Error {
	return internal("MAIL_SEND_FAILED", "No se pudo enviar el correo", cause)
}

// Storage

func FileUploadFailed(cause error) *Error {
	return internal("FILE_UPLOAD_FAILED", "No se pudo guardar el archivo", cause)
}

func InvalidFile(message string) *Error {
	return badRequest("FILE_INVALID", message)
}

// Internal wraps unclassified failures; their detail never reaches clients.
func Internal(cause error) *Error {
	return internal("INTERNAL_ERROR", "Ocurrio un error inesperado. Por favor, verifique los logs", cause)
}

const pgUniqueViolation = "23505"

// FromDB translates storage errors into the closed catalog: record-not-found
// stays with the caller-provided fallback, unique violations become an
// exposable 400 conflict with the constraint detail, everything else is
// internal.
func FromDB(err error, recordNotFound *Error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && recordNotFound != nil {
		return recordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		detail := pgErr.Detail
		if detail == "" {
			detail = "Violacion de restriccion unica"
		}
		return badRequest("UNIQUE_VIOLATION", detail)
	}

	return Internal(err)
}

// IsUniqueViolation reports whether err carries a Postgres 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// As unwraps err into the catalog, if it belongs to it.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
