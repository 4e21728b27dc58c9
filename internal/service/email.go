package service

import (
	"context"

	"github.com/Dan9191/credit-simulator/internal/models"
)

// SendSummary runs the simulation and mails its summary to req.To.
func (s *Service) SendSummary(ctx context.Context, req models.SummaryEmailRequest) (models.SimulationResponse, error) {
	if s.mailer == nil {
		return models.SimulationResponse{}, ErrMailerDisabled
	}
	if req.To == "" {
		return models.SimulationResponse{}, ErrInvalidRecipient
	}

	resp, err := s.Simulate(ctx, req.Simulation)
	if err != nil {
		return models.SimulationResponse{}, err
	}
	if err := s.mailer.SendSimulationSummary(req.To, req.Name, resp); err != nil {
		return models.SimulationResponse{}, err
	}
	return resp, nil
}
