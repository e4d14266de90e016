package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cms/internal/authz"
	apperrors "github.com/allisson/cms/internal/errors"
	"github.com/allisson/cms/internal/httputil"
)

// SubjectResolver produces the subject a permission check runs against.
// Resolvers typically read a record loaded by an existence middleware or
// build a subject from the request body.
type SubjectResolver func(c *gin.Context) (authz.Subject, error)

// FieldsResolver produces the set of fields a write touches, so field-level
// deny rules can veto the request. A nil resolver means no field check.
type FieldsResolver func(c *gin.Context) ([]string, error)

// StaticSubject resolves to a bare subject type with no record attached.
// Used for collection-level checks like listing or type-level creation.
func StaticSubject(subjectType authz.SubjectType) SubjectResolver {
	return func(c *gin.Context) (authz.Subject, error) {
		return authz.Subject{Type: subjectType}, nil
	}
}

// BodySubject resolves the request body into a subject record, so creation
// checks can match conditions against the incoming payload. The body is
// restored for the handler to bind afterwards.
func BodySubject(subjectType authz.SubjectType) SubjectResolver {
	return func(c *gin.Context) (authz.Subject, error) {
		record, err := peekBodyObject(c)
		if err != nil {
			return authz.Subject{}, err
		}
		return authz.Subject{Type: subjectType, Record: record}, nil
	}
}

// BodyFields resolves the top-level keys of the JSON request body. Update
// checks pass these through the field-deny rules, so a request naming an
// immutable field is rejected as a whole. The body is restored for the
// handler to bind afterwards.
func BodyFields() FieldsResolver {
	return func(c *gin.Context) ([]string, error) {
		record, err := peekBodyObject(c)
		if err != nil {
			return nil, err
		}

		fields := make([]string, 0, len(record))
		for key := range record {
			fields = append(fields, key)
		}
		return fields, nil
	}
}

// peekBodyObject reads the request body as a JSON object and puts the bytes
// back so downstream binding still works.
func peekBodyObject(c *gin.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "failed to read request body")
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var record map[string]any
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "request body is not a JSON object")
	}

	return record, nil
}

// RequirePermission enforces an authorization rule for the route.
//
// The middleware builds the ability for the current principal (nil for
// anonymous requests), resolves the subject and optional fields, and
// evaluates the rule set. It fails closed: a resolver error denies the
// request rather than letting it through unchecked.
func RequirePermission(action authz.Action, subject SubjectResolver, fields FieldsResolver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ability := authz.AbilityFor(GetPrincipal(c))

		subj, err := subject(c)
		if err != nil {
			logger.Debug("permission subject resolution failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrForbidden, "permission check failed"), logger)
			c.Abort()
			return
		}

		var fieldList []string
		if fields != nil {
			fieldList, err = fields(c)
			if err != nil {
				logger.Debug("permission fields resolution failed", slog.String("error", err.Error()))
				httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrForbidden, "permission check failed"), logger)
				c.Abort()
				return
			}
		}

		if err := ability.Can(action, subj, fieldList...); err != nil {
			logger.Debug("permission denied",
				slog.String("action", string(action)),
				slog.String("subject", string(subj.Type)),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
