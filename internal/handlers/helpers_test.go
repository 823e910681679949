package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// testEnvelope decodes either form of the response envelope
type testEnvelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Body    map[string]json.RawMessage `json:"body"`
}

// handlerSuite holds what every handler suite needs
type handlerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	echo   *echo.Echo
	userID uuid.UUID
}

func (s *handlerSuite) initHandlerSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.userID = uuid.New()
}

// newContext builds an authenticated context. A non-nil body is sent as JSON.
func (s *handlerSuite) newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.Set("user_email", "owner@example.com")
	c.Set(TraceIDContextKey, "trace-test")

	return c, rec
}

// newMultipartContext builds an authenticated multipart request with one
// file per entry of files.
func (s *handlerSuite) newMultipartContext(target string, fields map[string]string, files map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		s.Require().NoError(writer.WriteField(name, value))
	}
	for filename, content := range files {
		part, err := writer.CreateFormFile(attachmentsField, filename)
		s.Require().NoError(err)
		_, err = part.Write([]byte(content))
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	return c, rec
}

func (s *handlerSuite) decode(rec *httptest.ResponseRecorder) testEnvelope {
	var env testEnvelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// errorCode returns body.code of an error envelope
func (s *handlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var code string
	s.Require().NoError(json.Unmarshal(s.decode(rec).Body["code"], &code))
	return code
}
