package storeerr

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/blogs-server/internal/errs"
)

// HandleError converts a low-level store error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - duplicate key: 400 with <COLLECTION>_ALREADY_EXISTS
//   - no documents: 404
//   - timeout / network / server selection: 500 STORE_UNAVAILABLE
//   - anything else: generic 500; the driver message never reaches the client
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	storeErr := Classify(err)

	switch storeErr.Code {
	case DuplicateKey:
		errorCode := generateErrorCode(storeErr.Collection, DuplicateKey)
		return errs.NewBadRequestError(formatUserFriendlyMessage(storeErr), true, &errorCode, nil)

	case NoDocuments:
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(storeErr.Collection)), true, nil)

	case Unavailable:
		return errs.NewStoreUnavailableError()

	default:
		return errs.NewInternalServerError()
	}
}

// generateErrorCode creates "<DOMAIN>_<ACTION>" codes, e.g. wishlist + DuplicateKey
// => WISHLIST_ALREADY_EXISTS.
func generateErrorCode(collection string, code Code) string {
	if collection == "" {
		collection = "RECORD"
	}

	domain := strings.ToUpper(collection)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch code {
	case DuplicateKey:
		action = "ALREADY_EXISTS"
	case NoDocuments:
		action = "NOT_FOUND"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing message for a duplicate key.
func formatUserFriendlyMessage(storeErr *Error) string {
	entityName := getEntityName(storeErr.Collection)
	fields := extractFieldsFromIndex(storeErr.Index)
	if fields == "" {
		return fmt.Sprintf("A %s with this identifier already exists", entityName)
	}
	return fmt.Sprintf("A %s with this %s already exists", entityName, fields)
}

// getEntityName turns a collection name into a singular, title-cased entity.
func getEntityName(collection string) string {
	if collection == "" {
		return "Record"
	}
	entity := collection
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case or camelCase into Title Case words.
//
//	"userEmail" -> "User Email"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range text {
		if r == '_' {
			b.WriteRune(' ')
			continue
		}
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return cases.Title(language.English).String(b.String())
}

// extractFieldsFromIndex reads field names from a default Mongo index name.
//
//	"userEmail_1_blogId_1" -> "User Email and Blog Id"
func extractFieldsFromIndex(index string) string {
	if index == "" || index == "_id_" {
		return ""
	}
	parts := strings.Split(index, "_")
	var fields []string
	for i := 0; i+1 < len(parts); i += 2 {
		if parts[i+1] != "1" && parts[i+1] != "-1" {
			return ""
		}
		fields = append(fields, humanizeText(parts[i]))
	}
	return strings.Join(fields, " and ")
}
