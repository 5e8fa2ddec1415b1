package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"partner-ads/internal/app/gql"
	"partner-ads/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"go.uber.org/zap"
)

type GraphQLHandler struct {
	schema        graphql.Schema
	maxUploadSize int64
	cookieTTL     time.Duration
	secureCookie  bool
	log           *zap.Logger
}

// Serve executes GraphQL requests. With setCookie, a successful login also
// stores the issued token in an HttpOnly cookie.
func (h *GraphQLHandler) Serve(setCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := h.parse(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": err.Error()}}})
			return
		}

		if c.Request.Method == http.MethodGet && isMutation(req) {
			c.Header("Allow", http.MethodPost)
			c.JSON(http.StatusMethodNotAllowed, gin.H{"errors": []gin.H{{"message": "mutations are only accepted over POST"}}})
			return
		}

		sess := &gql.Session{Claims: middleware.Claims(c)}
		res := gql.Execute(gql.WithSession(c.Request.Context(), sess), h.schema, req)
		if res.HasErrors() {
			h.log.Debug("graphql errors",
				zap.String("request_id", c.GetString(middleware.CtxRequestID)),
				zap.Any("errors", res.Errors),
			)
		}

		if setCookie && sess.Token != "" {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(middleware.CookieName, sess.Token, int(h.cookieTTL.Seconds()), "/", "", h.secureCookie, true)
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *GraphQLHandler) parse(c *gin.Context) (gql.Request, error) {
	var req gql.Request

	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if vars := c.Query("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return req, fmt.Errorf("variables are invalid JSON: %w", err)
			}
		}
		return req, nil
	}

	mediaType, _, _ := mime.ParseMediaType(c.ContentType())
	switch mediaType {
	case "multipart/form-data":
		return h.parseMultipart(c)
	case "application/graphql":
		body, err := c.GetRawData()
		if err != nil {
			return req, err
		}
		req.Query = string(body)
		return req, nil
	default:
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, fmt.Errorf("invalid request body: %w", err)
		}
		return req, nil
	}
}

// isMutation reports whether the operation req selects is a mutation.
// Documents that do not parse are left to the executor to report.
func isMutation(req gql.Request) bool {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return false
	}

	var ops []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	for _, op := range ops {
		named := op.Name != nil && op.Name.Value == req.OperationName
		if req.OperationName == "" && len(ops) == 1 || named {
			return op.Operation == ast.OperationTypeMutation
		}
	}
	return false
}

// parseMultipart reads a GraphQL multipart request: an "operations" field
// with the JSON request, a "map" field listing for each file part the
// variable paths it fills, and the file parts themselves.
func (h *GraphQLHandler) parseMultipart(c *gin.Context) (gql.Request, error) {
	var req gql.Request

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	if err := c.Request.ParseMultipartForm(h.maxUploadSize); err != nil {
		return req, fmt.Errorf("invalid multipart request: %w", err)
	}
	form := c.Request.MultipartForm

	if err := json.Unmarshal([]byte(first(form.Value["operations"])), &req); err != nil {
		return req, fmt.Errorf("operations are invalid JSON: %w", err)
	}

	var fileMap map[string][]string
	if raw := first(form.Value["map"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fileMap); err != nil {
			return req, fmt.Errorf("map is invalid JSON: %w", err)
		}
	}

	for key, paths := range fileMap {
		files := form.File[key]
		if len(files) == 0 {
			return req, fmt.Errorf("missing file part %q", key)
		}
		for _, path := range paths {
			if err := injectFile(&req, path, files[0]); err != nil {
				return req, err
			}
		}
	}
	return req, nil
}

var errBadPath = errors.New("invalid file path")

// injectFile stores fh at a dotted path such as "variables.file" or
// "variables.files.1".
func injectFile(req *gql.Request, path string, fh *multipart.FileHeader) error {
	parts := strings.Split(path, ".")
	if len(parts) < 2 || parts[0] != "variables" {
		return fmt.Errorf("%w: %q", errBadPath, path)
	}
	if req.Variables == nil {
		req.Variables = map[string]interface{}{}
	}

	var cur interface{} = req.Variables
	for i, key := range parts[1:] {
		last := i == len(parts)-2
		switch node := cur.(type) {
		case map[string]interface{}:
			if last {
				node[key] = fh
				return nil
			}
			cur = node[key]
		case []interface{}:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(node) {
				return fmt.Errorf("%w: %q", errBadPath, path)
			}
			if last {
				node[idx] = fh
				return nil
			}
			cur = node[idx]
		default:
			return fmt.Errorf("%w: %q", errBadPath, path)
		}
	}
	return nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
