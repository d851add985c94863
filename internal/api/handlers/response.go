package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/ajg/form"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const (
	msgInternalError = "внутренняя ошибка сервера"

	// maxMultipartMemory часть multipart-тела, которая держится в памяти
	maxMultipartMemory = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse тело ответа без данных
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreatedResponse тело ответа на создание записи
type CreatedResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В сообщениях об ошибках используем имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DecodeBody декодирует тело запроса: JSON, application/x-www-form-urlencoded
// или multipart/form-data (только текстовые поля). Запрос без Content-Type читается как JSON.
func DecodeBody(r *http.Request, v interface{}) error {
	if isMultipart(r) {
		return decodeMultipart(r, v)
	}
	if render.GetRequestContentType(r) == render.ContentTypeUnknown {
		return render.DecodeJSON(r.Body, v)
	}
	return render.Decode(r, v)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func decodeMultipart(r *http.Request, v interface{}) error {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return err
	}
	defer r.MultipartForm.RemoveAll()

	return form.DecodeValues(v, r.MultipartForm.Value)
}

// DecodeJSON декодирует JSON из тела запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	return render.DecodeJSON(r.Body, v)
}

// Validate проверяет структуру по validate-тегам и возвращает ошибку с перечнем полей
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	msgs := make([]string, 0, len(validateErrs))
	for _, fe := range validateErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("поле %s обязательно", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("поле %s должно быть email", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("поле %s длиннее %s символов", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("поле %s некорректно", fe.Field()))
		}
	}

	return errors.New(strings.Join(msgs, ", "))
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondOK отправляет {"success":true}
func RespondOK(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// RespondCreated отправляет 201 {"success":true,"id":...}
func RespondCreated(w http.ResponseWriter, id int64) {
	RespondJSON(w, http.StatusCreated, CreatedResponse{Success: true, ID: id})
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
