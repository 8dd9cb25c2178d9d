package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/appditto/survey-push-server/config"
	"github.com/appditto/survey-push-server/models"
	"github.com/appditto/survey-push-server/models/dbmodels"
	"github.com/appditto/survey-push-server/notifications"
	"github.com/appditto/survey-push-server/reminders"
	"github.com/appditto/survey-push-server/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/slices"
	"k8s.io/klog/v2"
)

type HttpController struct {
	Service   *notifications.Service
	Scheduler *reminders.Scheduler
	// Optional, tokens answers with an empty list without it
	PushTokenRepo *repository.PushTokenRepo
}

var supportedActions = []string{
	"register",
	"send",
	"schedule_daily_survey",
	"cancel_scheduled_survey",
	"scheduled",
	"next_occurrence",
	"tokens",
	"notification_response",
}

// HandleAction dispatches on the "action" field of the posted JSON object
func (hc *HttpController) HandleAction(c *fiber.Ctx) error {
	var baseRequest map[string]interface{}
	if err := json.Unmarshal(c.Body(), &baseRequest); err != nil {
		klog.Errorf("Error unmarshalling http base request %s", err)
		return ErrInvalidRequest(c)
	}

	if _, ok := baseRequest["action"]; !ok {
		return ErrInvalidRequest(c)
	}

	action := strings.ToLower(fmt.Sprintf("%v", baseRequest["action"]))

	if !slices.Contains(supportedActions, action) {
		klog.Errorf("Action %s is not supported", action)
		return ErrUnsupportedAction(c)
	}

	klog.Infof("Received HTTP action %s", action)

	switch action {
	case "register":
		return hc.handleRegister(c, baseRequest)
	case "send":
		return hc.handleSend(c, baseRequest)
	case "schedule_daily_survey":
		return hc.handleSchedule(c, baseRequest)
	case "cancel_scheduled_survey":
		if err := hc.Scheduler.CancelScheduledSurvey(c.UserContext()); err != nil {
			klog.Errorf("Error cancelling scheduled survey %s", err)
			return ErrInternalServerError(c, "Error cancelling scheduled survey")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
	case "scheduled":
		scheduled, err := hc.Scheduler.Scheduled(c.UserContext())
		if err != nil {
			klog.Errorf("Error listing scheduled reminders %s", err)
			return ErrInternalServerError(c, "Error listing scheduled reminders")
		}
		return c.Status(fiber.StatusOK).JSON(scheduled)
	case "next_occurrence":
		return hc.handleNextOccurrence(c, baseRequest)
	case "tokens":
		tokens := []dbmodels.PushToken{}
		if hc.PushTokenRepo != nil {
			found, err := hc.PushTokenRepo.GetTokens()
			if err != nil {
				klog.Errorf("Error listing push tokens %s", err)
				return ErrInternalServerError(c, "Error listing push tokens")
			}
			tokens = append(tokens, found...)
		}
		return c.Status(fiber.StatusOK).JSON(tokens)
	case "notification_response":
		var responseRequest models.NotificationResponseRequest
		if err := mapstructure.Decode(baseRequest, &responseRequest); err != nil {
			return ErrInvalidRequest(c)
		}
		hc.Service.DispatchResponse(&responseRequest.NotificationResponse)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
	}

	return ErrUnsupportedAction(c)
}

func (hc *HttpController) handleRegister(c *fiber.Ctx, baseRequest map[string]interface{}) error {
	var registerRequest models.RegisterRequest
	if err := mapstructure.Decode(baseRequest, &registerRequest); err != nil {
		klog.Errorf("Error decoding register request %s", err)
		return ErrBadrequest(c, err.Error())
	}
	env := &notifications.ClientEnvironment{
		Device:     registerRequest.IsDevice,
		OS:         strings.ToLower(registerRequest.Platform),
		Permission: notifications.PermissionStatus(strings.ToLower(registerRequest.PermissionStatus)),
		Token:      registerRequest.PushToken,
	}
	result, err := hc.Service.Register(c.UserContext(), env)
	if errors.Is(err, notifications.ErrEmptyToken) {
		return ErrBadrequest(c, err.Error())
	} else if err != nil {
		klog.Errorf("Error registering push token %s", err)
		return ErrInternalServerError(c, "Error registering push token")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  result.Status,
		"token":   result.Token,
		"channel": result.Channel,
		"handler": hc.Service.HandlerConfig(),
	})
}

func (hc *HttpController) handleSend(c *fiber.Ctx, baseRequest map[string]interface{}) error {
	var sendRequest models.SendRequest
	if err := mapstructure.Decode(baseRequest, &sendRequest); err != nil {
		klog.Errorf("Error decoding send request %s", err)
		return ErrBadrequest(c, err.Error())
	}
	if err := hc.Service.Send(c.UserContext(), sendRequest.Title, sendRequest.Body, sendRequest.Data); err != nil {
		klog.Errorf("Error sending push notification %s", err)
		return ErrInternalServerError(c, err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (hc *HttpController) handleSchedule(c *fiber.Ctx, baseRequest map[string]interface{}) error {
	var scheduleRequest models.ScheduleRequest
	if err := mapstructure.Decode(baseRequest, &scheduleRequest); err != nil {
		klog.Errorf("Error decoding schedule request %s", err)
		return ErrBadrequest(c, err.Error())
	}
	hc.Scheduler.ScheduleDailySurvey(time.UnixMilli(scheduleRequest.Time))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (hc *HttpController) handleNextOccurrence(c *fiber.Ctx, baseRequest map[string]interface{}) error {
	var nextRequest models.NextOccurrenceRequest
	if err := mapstructure.Decode(baseRequest, &nextRequest); err != nil {
		klog.Errorf("Error decoding next occurrence request %s", err)
		return ErrBadrequest(c, err.Error())
	}
	date := time.UnixMilli(nextRequest.Date)
	if date.Before(time.Now().AddDate(0, 0, -config.MAX_OCCURRENCE_AGE_DAYS)) {
		return ErrBadrequest(c, fmt.Sprintf("date must be within %d days in the past", config.MAX_OCCURRENCE_AGE_DAYS))
	}
	if hc.Scheduler != nil && hc.Scheduler.Location != nil {
		date = date.In(hc.Scheduler.Location)
	}
	next := reminders.GetNextOccurrence(date)
	return c.Status(fiber.StatusOK).JSON(&models.NextOccurrenceResponse{
		Next:    next.UnixMilli(),
		NextISO: next.Format(time.RFC3339),
	})
}
