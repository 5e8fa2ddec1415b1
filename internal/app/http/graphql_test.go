package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"partner-ads/database/databasetest"
	"partner-ads/internal/api/campaigns"
	"partner-ads/internal/api/displays"
	"partner-ads/internal/api/media"
	"partner-ads/internal/api/revenues"
	"partner-ads/internal/api/users"
	"partner-ads/internal/app/gql"
	"partner-ads/internal/app/http/middleware"
	"partner-ads/internal/auth"
	dm "partner-ads/internal/domain/media"
	"partner-ads/internal/infra/filestore"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01")

type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newRouter(t *testing.T) (*gin.Engine, *filestore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := databasetest.Open(t)
	log := zap.NewNop()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	files := filestore.New(afero.NewMemMapFs(), dm.PathPrefix)

	schema, err := gql.NewSchema(gql.Services{
		Users:     users.NewService(db, issuer, log),
		Images:    media.NewService(db),
		Displays:  displays.NewService(db),
		Campaigns: campaigns.NewService(db, files, log),
		Revenues:  revenues.NewService(db, nil),
	})
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Schema:        schema,
		Tokens:        issuer,
		Log:           log,
		Media:         files.FileSystem(),
		MediaURL:      "/media",
		MaxUploadSize: 1 << 20,
		CookieTTL:     time.Hour,
	})
	return r, files
}

func do(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, response) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res response
	if w.Code == http.StatusOK || w.Code == http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	}
	return w, res
}

func postJSON(query string, vars map[string]interface{}) *http.Request {
	body, _ := json.Marshal(gql.Request{Query: query, Variables: vars})
	req := httptest.NewRequest(http.MethodPost, "/graphql/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)
	w, _ := do(t, r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGraphQLOverJSONAndGet(t *testing.T) {
	r, _ := newRouter(t)

	_, res := do(t, r, postJSON(`mutation($name: String!) { createDisplay(displayName: $name) { display { id displayName } } }`,
		map[string]interface{}{"name": "Gare"}))
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"display": {"id": "1", "displayName": "Gare"}}`, string(res.Data["createDisplay"]))

	q := url.Values{"query": {`query($id: Int!) { displayById(id: $id) { displayName } }`}, "variables": {`{"id": 1}`}}
	_, res = do(t, r, httptest.NewRequest(http.MethodGet, "/graphql/?"+q.Encode(), nil))
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"displayName": "Gare"}`, string(res.Data["displayById"]))

	req := httptest.NewRequest(http.MethodPost, "/graphql/", strings.NewReader(`{ allDisplays { displayName } }`))
	req.Header.Set("Content-Type", "application/graphql")
	_, res = do(t, r, req)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `[{"displayName": "Gare"}]`, string(res.Data["allDisplays"]))
}

func TestGraphQLRejectsMalformedBody(t *testing.T) {
	r, _ := newRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/graphql/", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	w, res := do(t, r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, res.Errors)
}

func TestMultipartUpload(t *testing.T) {
	r, files := newRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("operations",
		`{"query": "mutation($file: Upload!) { uploadImage(file: $file, description: \"hero\") { ok message imageObj { image description } } }", "variables": {"file": null}}`))
	require.NoError(t, mw.WriteField("map", `{"0": ["variables.file"]}`))
	part, err := mw.CreateFormFile("0", "hero.png")
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/graphql/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, res := do(t, r, req)
	require.Empty(t, res.Errors)

	var up struct {
		OK       bool   `json:"ok"`
		Message  string `json:"message"`
		ImageObj struct {
			Image       string `json:"image"`
			Description string `json:"description"`
		} `json:"imageObj"`
	}
	require.NoError(t, json.Unmarshal(res.Data["uploadImage"], &up))
	require.True(t, up.OK, up.Message)
	assert.Equal(t, "hero", up.ImageObj.Description)
	assert.True(t, strings.HasPrefix(up.ImageObj.Image, "media/"))
	assert.True(t, strings.HasSuffix(up.ImageObj.Image, ".png"))
	exists, err := files.Exists(up.ImageObj.Image)
	require.NoError(t, err)
	assert.True(t, exists)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+up.ImageObj.Image, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())
}

func TestInjectFile(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "a.png"}

	req := gql.Request{Variables: map[string]interface{}{
		"files": []interface{}{nil, nil},
		"input": map[string]interface{}{"file": nil},
	}}
	require.NoError(t, injectFile(&req, "variables.files.1", fh))
	require.NoError(t, injectFile(&req, "variables.input.file", fh))
	assert.Same(t, fh, req.Variables["files"].([]interface{})[1])
	assert.Same(t, fh, req.Variables["input"].(map[string]interface{})["file"])

	for _, path := range []string{"file", "operations.file", "variables.files.7", "variables.files.x", "variables.missing.file"} {
		assert.ErrorIs(t, injectFile(&req, path, fh), errBadPath, path)
	}
}

func TestLoginSetsCookieOnJWTEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	_, res := do(t, r, postJSON(`mutation { createUtilisateur(nom: "N", prenom: "P", email: "n@p.fr", motDePasse: "pw", role: admin) { utilisateur { id } } }`, nil))
	require.Empty(t, res.Errors)

	login := `mutation { loginUtilisateur(email: "n@p.fr", motDePasse: "pw") { ok token } }`

	w, _ := do(t, r, postJSON(login, nil))
	assert.Empty(t, w.Result().Cookies())

	req := postJSON(login, nil)
	req.URL.Path = "/graphql/jwt/"
	w, res = do(t, r, req)
	require.Empty(t, res.Errors)

	var out struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Data["loginUtilisateur"], &out))
	require.True(t, out.OK)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, out.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	me := httptest.NewRequest(http.MethodGet, "/graphql/?"+url.Values{"query": {`{ me { email } }`}}.Encode(), nil)
	me.AddCookie(cookie)
	_, res = do(t, r, me)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"email": "n@p.fr"}`, string(res.Data["me"]))
}

func TestMutationsRequirePost(t *testing.T) {
	r, _ := newRouter(t)

	for _, path := range []string{"/graphql/", "/graphql/jwt/"} {
		q := url.Values{"query": {`mutation { createDisplay(displayName: "via-get") { display { id } } }`}}
		w, res := do(t, r, httptest.NewRequest(http.MethodGet, path+"?"+q.Encode(), nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
		assert.Nil(t, res.Data)
	}

	// the selected operation decides, not the first one in the document
	doc := `query list { allDisplays { id } } mutation add { createDisplay(displayName: "x") { display { id } } }`
	q := url.Values{"query": {doc}, "operationName": {"add"}}
	w, _ := do(t, r, httptest.NewRequest(http.MethodGet, "/graphql/?"+q.Encode(), nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	q.Set("operationName", "list")
	_, res := do(t, r, httptest.NewRequest(http.MethodGet, "/graphql/?"+q.Encode(), nil))
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `[]`, string(res.Data["allDisplays"]))
}
