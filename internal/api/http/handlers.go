package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"groupdine/internal/domain"
	"groupdine/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	Events   service.EventServiceInterface
	Users    service.UserServiceInterface
	Dislikes service.DislikeServiceInterface
	Planner  service.PlannerServiceInterface

	validate *validator.Validate
}

func NewHandler(events service.EventServiceInterface, users service.UserServiceInterface, dislikes service.DislikeServiceInterface, planner service.PlannerServiceInterface) *Handler {
	return &Handler{
		Events:   events,
		Users:    users,
		Dislikes: dislikes,
		Planner:  planner,
		validate: validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	r.HandleFunc("/api/events", h.createEvent).Methods("POST")
	r.HandleFunc("/api/events/{eventId}", h.getEvent).Methods("GET")
	r.HandleFunc("/api/events/{eventId}/invite/qr", h.getInviteQR).Methods("GET")
	r.HandleFunc("/api/events/{eventId}/responses", h.submitResponse).Methods("POST")
	r.HandleFunc("/api/events/{eventId}/recommendations", h.generateRecommendations).Methods("POST")
	r.HandleFunc("/api/events/{eventId}/recommendations", h.getRecommendations).Methods("GET")

	r.HandleFunc("/api/users/onboarding", h.onboardUser).Methods("POST")
	r.HandleFunc("/api/users/{phone}", h.getUser).Methods("GET")
	r.HandleFunc("/api/users/{phone}/preferences", h.updateUserPreferences).Methods("PATCH")

	r.HandleFunc("/api/users/{phone}/dislikes", h.addDislike).Methods("POST")
	r.HandleFunc("/api/users/{phone}/dislikes", h.getUserDislikes).Methods("GET")
	r.HandleFunc("/api/users/{phone}/dislikes/{dislikeId}", h.updateDislike).Methods("PATCH")
	r.HandleFunc("/api/users/{phone}/dislikes/{dislikeId}", h.removeDislike).Methods("DELETE")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createEventRequest struct {
	OrganizerPhone        string `json:"organizer_phone" validate:"required"`
	Location              string `json:"location" validate:"required"`
	OccasionDescription   string `json:"occasion_description"`
	Date                  string `json:"date"`
	TimeWindow            string `json:"time_window"`
	ExpectedAttendeeCount int    `json:"expected_attendee_count" validate:"gte=0"`
	OrganizerPrompt       string `json:"organizer_prompt"`
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	event := domain.Event{
		OrganizerPhone:        req.OrganizerPhone,
		Location:              req.Location,
		OccasionDescription:   req.OccasionDescription,
		Date:                  req.Date,
		TimeWindow:            req.TimeWindow,
		ExpectedAttendeeCount: req.ExpectedAttendeeCount,
		OrganizerPrompt:       req.OrganizerPrompt,
	}
	if err := h.Events.Create(r.Context(), &event); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.Events.Get(r.Context(), mux.Vars(r)["eventId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) getInviteQR(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]
	if _, err := h.Events.Get(r.Context(), eventID); err != nil {
		h.writeServiceError(w, err)
		return
	}
	png, err := h.Events.InviteQR(eventID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

type submitResponseRequest struct {
	RespondentPhone     string  `json:"respondent_phone" validate:"required"`
	Email               string  `json:"email"`
	AttendanceConfirmed bool    `json:"attendance_confirmed"`
	LocationOverride    *string `json:"location_preference_override"`
	DietaryNotes        *string `json:"event_specific_dietary_notes"`
	Prompt              *string `json:"prompt"`
}

func (h *Handler) submitResponse(w http.ResponseWriter, r *http.Request) {
	var req submitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := domain.EventResponse{
		EventID:             mux.Vars(r)["eventId"],
		RespondentPhone:     req.RespondentPhone,
		RespondentEmail:     req.Email,
		AttendanceConfirmed: req.AttendanceConfirmed,
		LocationOverride:    req.LocationOverride,
		DietaryNotes:        req.DietaryNotes,
		Prompt:              req.Prompt,
	}
	crossed, err := h.Planner.SubmitResponse(r.Context(), &response)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":           "Response submitted successfully",
		"response":          response,
		"threshold_crossed": crossed,
	})
}

func (h *Handler) generateRecommendations(w http.ResponseWriter, r *http.Request) {
	session, err := h.Planner.Generate(r.Context(), mux.Vars(r)["eventId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	session, err := h.Planner.Latest(r.Context(), mux.Vars(r)["eventId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type onboardUserRequest struct {
	PhoneNumber         string   `json:"phone_number" validate:"required"`
	Email               string   `json:"email"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AlcoholPreference   string   `json:"alcohol_preference" validate:"omitempty,oneof=required none no-preference"`
	PushNotifications   *bool    `json:"push_notifications_enabled"`
	EmailNotifications  *bool    `json:"email_notifications_enabled"`
}

func (h *Handler) onboardUser(w http.ResponseWriter, r *http.Request) {
	var req onboardUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := domain.UserProfile{
		PhoneNumber:         req.PhoneNumber,
		Email:               req.Email,
		DietaryRestrictions: req.DietaryRestrictions,
		AlcoholPreference:   req.AlcoholPreference,
		PushNotifications:   boolOrDefault(req.PushNotifications, true),
		EmailNotifications:  boolOrDefault(req.EmailNotifications, true),
	}
	if err := h.Users.Onboard(r.Context(), &user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User preferences saved successfully",
		"user":    user,
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.Get(r.Context(), mux.Vars(r)["phone"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateUserPreferencesRequest struct {
	DietaryRestrictions *[]string `json:"dietary_restrictions"`
	AlcoholPreference   *string   `json:"alcohol_preference" validate:"omitempty,oneof=required none no-preference"`
	PushNotifications   *bool     `json:"push_notifications_enabled"`
	EmailNotifications  *bool     `json:"email_notifications_enabled"`
}

func (h *Handler) updateUserPreferences(w http.ResponseWriter, r *http.Request) {
	var req updateUserPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Users.UpdatePreferences(r.Context(), mux.Vars(r)["phone"], domain.UserPreferencesUpdate{
		DietaryRestrictions: req.DietaryRestrictions,
		AlcoholPreference:   req.AlcoholPreference,
		PushNotifications:   req.PushNotifications,
		EmailNotifications:  req.EmailNotifications,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Preferences updated successfully",
		"user":    updated,
	})
}

type addDislikeRequest struct {
	RestaurantName    string  `json:"restaurant_name" validate:"required"`
	RestaurantAddress string  `json:"restaurant_address" validate:"required"`
	RestaurantID      string  `json:"restaurant_id"`
	DislikeType       string  `json:"dislike_type" validate:"omitempty,oneof=permanent event-specific"`
	EventID           *string `json:"event_id"`
	Reason            string  `json:"reason" validate:"omitempty,oneof=poor_food bad_service allergy_concern atmosphere value personal other"`
	Notes             string  `json:"notes"`
}

func (h *Handler) addDislike(w http.ResponseWriter, r *http.Request) {
	var req addDislikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dislike := domain.DislikeRecord{
		UserPhone:         mux.Vars(r)["phone"],
		RestaurantID:      req.RestaurantID,
		RestaurantName:    req.RestaurantName,
		RestaurantAddress: req.RestaurantAddress,
		DislikeType:       req.DislikeType,
		EventID:           req.EventID,
		Reason:            req.Reason,
		Notes:             req.Notes,
	}
	if err := h.Dislikes.Add(r.Context(), &dislike); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Restaurant added to blacklist",
		"dislike": dislike,
	})
}

func (h *Handler) getUserDislikes(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]
	dislikes, err := h.Dislikes.ListForUser(r.Context(), phone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if dislikes == nil {
		dislikes = []domain.DislikeRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_phone": phone,
		"dislikes":   dislikes,
		"count":      len(dislikes),
	})
}

type updateDislikeRequest struct {
	IsActive *bool   `json:"is_active"`
	Reason   *string `json:"reason" validate:"omitempty,oneof=poor_food bad_service allergy_concern atmosphere value personal other"`
	Notes    *string `json:"notes"`
}

func (h *Handler) updateDislike(w http.ResponseWriter, r *http.Request) {
	var req updateDislikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Dislikes.Update(r.Context(), mux.Vars(r)["dislikeId"], domain.DislikeUpdate{
		IsActive: req.IsActive,
		Reason:   req.Reason,
		Notes:    req.Notes,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Dislike updated successfully",
		"dislike": updated,
	})
}

func (h *Handler) removeDislike(w http.ResponseWriter, r *http.Request) {
	if err := h.Dislikes.Deactivate(r.Context(), mux.Vars(r)["dislikeId"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Restaurant removed from blacklist"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrNoSession),
		errors.Is(err, service.ErrDislikeNotFound), errors.Is(err, service.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrMissingEventID), errors.Is(err, service.ErrNoAttendees):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
