package service

import (
	"context"

	"adire-boutique/repository"
	"adire-boutique/wizard"
)

// BookingSubmitter persists a finished booking wizard and relays it
type BookingSubmitter struct {
	Repo   repository.BookingRepositoryInterface
	Notify *NotifyService
}

var _ wizard.Submitter = (*BookingSubmitter)(nil)

func (s *BookingSubmitter) Submit(ctx context.Context, answers wizard.Answers) error {
	booking, err := s.Repo.CreateFromAnswers(ctx, answers)
	if err != nil {
		return err
	}
	if s.Notify != nil {
		s.Notify.NotifyBooking(booking)
	}
	return nil
}

// BespokeSubmitter persists a finished bespoke configurator wizard and relays it
type BespokeSubmitter struct {
	Repo   repository.BespokeOrderRepositoryInterface
	Notify *NotifyService
}

var _ wizard.Submitter = (*BespokeSubmitter)(nil)

func (s *BespokeSubmitter) Submit(ctx context.Context, answers wizard.Answers) error {
	order, err := s.Repo.CreateFromAnswers(ctx, answers)
	if err != nil {
		return err
	}
	if s.Notify != nil {
		s.Notify.NotifyBespokeOrder(order)
	}
	return nil
}

// AsoEbiSubmitter persists a finished aso-ebi wizard and relays it
type AsoEbiSubmitter struct {
	Repo   repository.AsoEbiRepositoryInterface
	Notify *NotifyService
}

var _ wizard.Submitter = (*AsoEbiSubmitter)(nil)

func (s *AsoEbiSubmitter) Submit(ctx context.Context, answers wizard.Answers) error {
	req, err := s.Repo.CreateFromAnswers(ctx, answers)
	if err != nil {
		return err
	}
	if s.Notify != nil {
		s.Notify.NotifyAsoEbiRequest(req)
	}
	return nil
}

// QuizSubmitter persists a finished style quiz or outfit builder run.
// Recommendations are served by a separate endpoint; the submission itself
// only records the answers.
type QuizSubmitter struct {
	Repo repository.QuizRepositoryInterface
	Flow string
}

var _ wizard.Submitter = (*QuizSubmitter)(nil)

func (s *QuizSubmitter) Submit(ctx context.Context, answers wizard.Answers) error {
	_, err := s.Repo.CreateFromAnswers(ctx, s.Flow, answers)
	return err
}
