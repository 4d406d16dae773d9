package papers

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

	getPapersHandler := kithttp.NewServer(
		func(ctx context.Context, r interface{}) (interface{}, error) {
			topic, ok := r.(string)
			if !ok {
				return nil, errors.New("invalid request", errors.BadRequest())
			}
			return service.Get(topic)
		},
		decodeGetPapersRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/papers/:topic", "GET", getPapersHandler)
}

func decodeGetPapersRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	return params["topic"], nil
}
