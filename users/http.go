package users

import (
	"context"
	"encoding/json"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/errors"
)

// HTTPServer defines the interface to register the http handlers.
type HTTPServer interface {
	RegisterHandler(path, method string, f http.Handler)
}

// encodeError writes an error as an HTTP response. It handles the status
// code contained in the error.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
	}
	w.WriteHeader(statusCode)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

func RegisterHTTP(srv HTTPServer, service *Service) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	// Create endpoint
	ep := NewEndpoint(service)

	registerHandler := kithttp.NewServer(
		ep.Register,
		decodeCredentialsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	loginHandler := kithttp.NewServer(
		ep.Login,
		decodeCredentialsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	topicsHandler := kithttp.NewServer(
		ep.Topics,
		decodeTopicsRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	addTopicHandler := kithttp.NewServer(
		ep.AddTopic,
		decodeTopicRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteTopicHandler := kithttp.NewServer(
		ep.DeleteTopic,
		decodeTopicRequest, // Decoder is the same as add
		kithttp.EncodeJSONResponse,
		opts...,
	)

	adminDataHandler := kithttp.NewServer(
		ep.AdminData,
		decodeEmptyRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// Routes
	srv.RegisterHandler("/register", "POST", registerHandler)
	srv.RegisterHandler("/login", "POST", loginHandler)
	srv.RegisterHandler("/topics/:email", "GET", topicsHandler)
	srv.RegisterHandler("/topics", "POST", addTopicHandler)
	srv.RegisterHandler("/topics", "DELETE", deleteTopicHandler)
	srv.RegisterHandler("/admin/data", "GET", adminDataHandler)
}

func decodeCredentialsRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return credentialsRequest{
		Email:    body.Email,
		Password: body.Password,
	}, nil
}

func decodeTopicsRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["email"], nil
}

func decodeTopicRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var body struct {
		Email string `json:"email"`
		Topic string `json:"topic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, errors.New("invalid body", errors.BadRequest(), errors.WithCause(err))
	}

	return topicRequest{
		Email: body.Email,
		Topic: body.Topic,
	}, nil
}

func decodeEmptyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}
