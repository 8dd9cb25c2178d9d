package reminders

import (
	"context"
	"sync"
	"time"

	"github.com/appditto/survey-push-server/config"
	"k8s.io/klog/v2"
)

var SurveyContent = Content{
	Title: config.SURVEY_TITLE,
	Body:  config.SURVEY_BODY,
}

var SurveyExpiryContent = Content{
	Title: config.SURVEY_TITLE,
	Body:  config.SURVEY_EXPIRY_BODY,
}

// Scheduler owns the daily survey reminders
type Scheduler struct {
	Triggers TriggerScheduler
	// Times of day are read in this location, defaults to time.Local
	Location *time.Location

	// One WaitGroup per ScheduleDailySurvey call, a WaitGroup must not be
	// reused while someone is waiting on it
	mu      sync.Mutex
	pending map[*sync.WaitGroup]struct{}
}

func (s *Scheduler) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// SurveyTriggers derives the primary trigger and the follow-up
// config.FOLLOW_UP_OFFSET later. Only hour and minute survive, so a follow-up
// past midnight becomes an early morning trigger.
func (s *Scheduler) SurveyTriggers(t time.Time) (Trigger, Trigger) {
	t = t.In(s.location())
	return TriggerAt(t), TriggerAt(t.Add(config.FOLLOW_UP_OFFSET))
}

// ScheduleDailySurvey registers both reminders in the background and returns
// immediately. Registration failures are logged.
func (s *Scheduler) ScheduleDailySurvey(t time.Time) {
	primary, followUp := s.SurveyTriggers(t)

	wg := &sync.WaitGroup{}
	wg.Add(2)
	s.mu.Lock()
	if s.pending == nil {
		s.pending = make(map[*sync.WaitGroup]struct{})
	}
	s.pending[wg] = struct{}{}
	s.mu.Unlock()

	go s.register(wg, primary, SurveyContent)
	go s.register(wg, followUp, SurveyExpiryContent)
	go func() {
		wg.Wait()
		s.mu.Lock()
		delete(s.pending, wg)
		s.mu.Unlock()
	}()
}

func (s *Scheduler) register(wg *sync.WaitGroup, trigger Trigger, content Content) {
	defer wg.Done()
	id, err := s.Triggers.Schedule(context.Background(), trigger, content)
	if err != nil {
		klog.Errorf("Error scheduling reminder at %s: %v", trigger.Clock(), err)
		return
	}
	klog.V(3).Infof("Scheduled reminder %s at %s", id, trigger.Clock())
}

// Wait blocks until the registrations started before the call finish
func (s *Scheduler) Wait() {
	s.mu.Lock()
	inFlight := make([]*sync.WaitGroup, 0, len(s.pending))
	for wg := range s.pending {
		inFlight = append(inFlight, wg)
	}
	s.mu.Unlock()
	for _, wg := range inFlight {
		wg.Wait()
	}
}

// CancelScheduledSurvey drops every scheduled reminder
func (s *Scheduler) CancelScheduledSurvey(ctx context.Context) error {
	s.Wait()
	return s.Triggers.CancelAll(ctx)
}

func (s *Scheduler) Scheduled(ctx context.Context) ([]ScheduledTrigger, error) {
	s.Wait()
	return s.Triggers.Scheduled(ctx)
}
