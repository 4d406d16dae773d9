package users

import (
	"context"

	"github.com/tranhoang77/HybridRAG-paper-recommendation-system/errors"
)

var errInvalidRequest = errors.New("invalid request", errors.BadRequest())

type Endpoint struct {
	service *Service
}

func NewEndpoint(s *Service) Endpoint {
	return Endpoint{
		service: s,
	}
}

type credentialsRequest struct {
	Email    string
	Password string
}

type topicRequest struct {
	Email string
	Topic string
}

func (ep Endpoint) Register(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(credentialsRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Register(req.Email, req.Password); err != nil {
		return nil, err
	}

	return map[string]string{"message": "User registered successfully"}, nil
}

func (ep Endpoint) Login(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(credentialsRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	email, err := ep.service.Login(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"message": "Login successful",
		"email":   email,
	}, nil
}

func (ep Endpoint) Topics(ctx context.Context, r interface{}) (interface{}, error) {
	email, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	return ep.service.Topics(email)
}

func (ep Endpoint) AddTopic(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(topicRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.AddTopic(req.Email, req.Topic); err != nil {
		return nil, err
	}

	return map[string]string{"message": "Topic added successfully"}, nil
}

func (ep Endpoint) DeleteTopic(ctx context.Context, r interface{}) (interface{}, error) {
	req, ok := r.(topicRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.DeleteTopic(req.Email, req.Topic); err != nil {
		return nil, err
	}

	return map[string]string{"message": "Topic deleted successfully"}, nil
}

// AdminData dumps the registry. Read failures are reported inside a 200
// body: that is the historical contract of /admin/data and it is preserved.
func (ep Endpoint) AdminData(ctx context.Context, _ interface{}) (interface{}, error) {
	rows, err := ep.service.All()
	if err != nil {
		return map[string]string{"error": err.Error()}, nil
	}
	return rows, nil
}
