package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"groupdine/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresRepository backs every document collection: events, responses,
// the restaurant pool, dislikes, recommendation sessions and booking tasks.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// ==================== EVENTS ====================

func (r *PostgresRepository) InsertEvent(ctx context.Context, event *domain.Event) error {
	event.ID = uuid.NewString()
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO events (id, organizer_phone, location, occasion_description, event_date, time_window,
			expected_attendee_count, organizer_prompt, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`, event.ID, event.OrganizerPhone, event.Location, event.OccasionDescription, event.Date,
		event.TimeWindow, event.ExpectedAttendeeCount, event.OrganizerPrompt, event.Status).
		Scan(&event.CreatedAt, &event.UpdatedAt)
}

func (r *PostgresRepository) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	var event domain.Event
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, organizer_phone, location, occasion_description, event_date, time_window,
			expected_attendee_count, organizer_prompt, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`, eventID).Scan(&event.ID, &event.OrganizerPhone, &event.Location, &event.OccasionDescription,
		&event.Date, &event.TimeWindow, &event.ExpectedAttendeeCount, &event.OrganizerPrompt,
		&event.Status, &event.CreatedAt, &event.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *PostgresRepository) UpdateEventStatus(ctx context.Context, eventID, status string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE events
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, status, eventID)
	return err
}

// ==================== EVENT RESPONSES ====================

// UpsertResponse creates a response or updates the existing one for the same
// (event, respondent) pair, so resubmission replaces rather than duplicates.
func (r *PostgresRepository) UpsertResponse(ctx context.Context, response *domain.EventResponse) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO event_responses (id, event_id, respondent_phone, respondent_email,
			attendance_confirmed, location_override, dietary_notes, prompt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id, respondent_phone) DO UPDATE
		SET respondent_email = EXCLUDED.respondent_email,
			attendance_confirmed = EXCLUDED.attendance_confirmed,
			location_override = EXCLUDED.location_override,
			dietary_notes = EXCLUDED.dietary_notes,
			prompt = EXCLUDED.prompt,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, responded_at, updated_at
	`, uuid.NewString(), response.EventID, response.RespondentPhone, response.RespondentEmail,
		response.AttendanceConfirmed, response.LocationOverride, response.DietaryNotes, response.Prompt).
		Scan(&response.ID, &response.RespondedAt, &response.UpdatedAt)
}

func (r *PostgresRepository) ListResponses(ctx context.Context, eventID string) ([]domain.EventResponse, error) {
	return r.queryResponses(ctx, `
		SELECT id, event_id, respondent_phone, respondent_email, attendance_confirmed,
			location_override, dietary_notes, prompt, responded_at, updated_at
		FROM event_responses
		WHERE event_id = $1
		ORDER BY responded_at ASC
	`, eventID)
}

func (r *PostgresRepository) ListConfirmed(ctx context.Context, eventID string) ([]domain.EventResponse, error) {
	return r.queryResponses(ctx, `
		SELECT id, event_id, respondent_phone, respondent_email, attendance_confirmed,
			location_override, dietary_notes, prompt, responded_at, updated_at
		FROM event_responses
		WHERE event_id = $1 AND attendance_confirmed = TRUE
		ORDER BY responded_at ASC
	`, eventID)
}

func (r *PostgresRepository) queryResponses(ctx context.Context, query string, args ...interface{}) ([]domain.EventResponse, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.EventResponse
	for rows.Next() {
		var resp domain.EventResponse
		if err := rows.Scan(&resp.ID, &resp.EventID, &resp.RespondentPhone, &resp.RespondentEmail,
			&resp.AttendanceConfirmed, &resp.LocationOverride, &resp.DietaryNotes, &resp.Prompt,
			&resp.RespondedAt, &resp.UpdatedAt); err != nil {
			continue
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// ==================== RESTAURANT POOL ====================

// ListAll returns the full candidate pool. The planner treats it as
// read-only and possibly stale.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, street, city, state, country, phone, cuisines, price_level, rating, num_reviews
		FROM restaurants
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address.Street, &rest.Address.City,
			&rest.Address.State, &rest.Address.Country, &rest.Phone,
			pq.Array(&rest.Cuisines), &rest.PriceLevel, &rest.Rating, &rest.NumReviews); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

// ==================== RESTAURANT DISLIKES ====================

func (r *PostgresRepository) InsertDislike(ctx context.Context, dislike *domain.DislikeRecord) error {
	dislike.ID = uuid.NewString()
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurant_dislikes (id, user_phone, restaurant_id, restaurant_name,
			restaurant_address, dislike_type, event_id, reason, notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, dislike.ID, dislike.UserPhone, dislike.RestaurantID, dislike.RestaurantName,
		dislike.RestaurantAddress, dislike.DislikeType, dislike.EventID, dislike.Reason,
		dislike.Notes, dislike.IsActive).Scan(&dislike.CreatedAt)
}

func (r *PostgresRepository) GetDislike(ctx context.Context, dislikeID string) (*domain.DislikeRecord, error) {
	var d domain.DislikeRecord
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_phone, restaurant_id, restaurant_name, restaurant_address,
			dislike_type, event_id, reason, notes, is_active, created_at
		FROM restaurant_dislikes
		WHERE id = $1
	`, dislikeID).Scan(&d.ID, &d.UserPhone, &d.RestaurantID, &d.RestaurantName, &d.RestaurantAddress,
		&d.DislikeType, &d.EventID, &d.Reason, &d.Notes, &d.IsActive, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) ListUserDislikes(ctx context.Context, phone string, activeOnly bool) ([]domain.DislikeRecord, error) {
	query := `
		SELECT id, user_phone, restaurant_id, restaurant_name, restaurant_address,
			dislike_type, event_id, reason, notes, is_active, created_at
		FROM restaurant_dislikes
		WHERE user_phone = $1
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`
	return r.queryDislikes(ctx, query, phone)
}

// ListGroupDislikes returns active and inactive records for every
// participant; the blacklist itself decides which ones filter.
func (r *PostgresRepository) ListGroupDislikes(ctx context.Context, phones []string) ([]domain.DislikeRecord, error) {
	return r.queryDislikes(ctx, `
		SELECT id, user_phone, restaurant_id, restaurant_name, restaurant_address,
			dislike_type, event_id, reason, notes, is_active, created_at
		FROM restaurant_dislikes
		WHERE user_phone = ANY($1)
		ORDER BY created_at ASC
	`, pq.Array(phones))
}

func (r *PostgresRepository) queryDislikes(ctx context.Context, query string, args ...interface{}) ([]domain.DislikeRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dislikes []domain.DislikeRecord
	for rows.Next() {
		var d domain.DislikeRecord
		if err := rows.Scan(&d.ID, &d.UserPhone, &d.RestaurantID, &d.RestaurantName,
			&d.RestaurantAddress, &d.DislikeType, &d.EventID, &d.Reason, &d.Notes,
			&d.IsActive, &d.CreatedAt); err != nil {
			continue
		}
		dislikes = append(dislikes, d)
	}
	return dislikes, rows.Err()
}

func (r *PostgresRepository) UpdateDislike(ctx context.Context, dislikeID string, update domain.DislikeUpdate) (*domain.DislikeRecord, error) {
	var d domain.DislikeRecord
	err := r.DB.QueryRowContext(ctx, `
		UPDATE restaurant_dislikes
		SET is_active = COALESCE($2, is_active),
			reason = COALESCE($3, reason),
			notes = COALESCE($4, notes)
		WHERE id = $1
		RETURNING id, user_phone, restaurant_id, restaurant_name, restaurant_address,
			dislike_type, event_id, reason, notes, is_active, created_at
	`, dislikeID, update.IsActive, update.Reason, update.Notes).
		Scan(&d.ID, &d.UserPhone, &d.RestaurantID, &d.RestaurantName, &d.RestaurantAddress,
			&d.DislikeType, &d.EventID, &d.Reason, &d.Notes, &d.IsActive, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ==================== USERS ====================

// UpsertUser saves a standing profile keyed by phone number, replacing the
// stored fields when the user onboards again.
func (r *PostgresRepository) UpsertUser(ctx context.Context, user *domain.UserProfile) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO users (phone_number, email, dietary_restrictions, alcohol_preference,
			push_notifications_enabled, email_notifications_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (phone_number) DO UPDATE
		SET email = EXCLUDED.email,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			alcohol_preference = EXCLUDED.alcohol_preference,
			push_notifications_enabled = EXCLUDED.push_notifications_enabled,
			email_notifications_enabled = EXCLUDED.email_notifications_enabled,
			updated_at = CURRENT_TIMESTAMP
		RETURNING created_at, updated_at
	`, user.PhoneNumber, user.Email, pq.Array(user.DietaryRestrictions), user.AlcoholPreference,
		user.PushNotifications, user.EmailNotifications).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (r *PostgresRepository) GetUser(ctx context.Context, phone string) (*domain.UserProfile, error) {
	var u domain.UserProfile
	err := r.DB.QueryRowContext(ctx, `
		SELECT phone_number, email, dietary_restrictions, alcohol_preference,
			push_notifications_enabled, email_notifications_enabled, created_at, updated_at
		FROM users
		WHERE phone_number = $1
	`, phone).Scan(&u.PhoneNumber, &u.Email, pq.Array(&u.DietaryRestrictions), &u.AlcoholPreference,
		&u.PushNotifications, &u.EmailNotifications, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) UpdateUserPreferences(ctx context.Context, phone string, update domain.UserPreferencesUpdate) (*domain.UserProfile, error) {
	var dietary interface{}
	if update.DietaryRestrictions != nil {
		dietary = pq.Array(*update.DietaryRestrictions)
	}
	var u domain.UserProfile
	err := r.DB.QueryRowContext(ctx, `
		UPDATE users
		SET dietary_restrictions = COALESCE($2::text[], dietary_restrictions),
			alcohol_preference = COALESCE($3, alcohol_preference),
			push_notifications_enabled = COALESCE($4, push_notifications_enabled),
			email_notifications_enabled = COALESCE($5, email_notifications_enabled),
			updated_at = CURRENT_TIMESTAMP
		WHERE phone_number = $1
		RETURNING phone_number, email, dietary_restrictions, alcohol_preference,
			push_notifications_enabled, email_notifications_enabled, created_at, updated_at
	`, phone, dietary, update.AlcoholPreference, update.PushNotifications, update.EmailNotifications).
		Scan(&u.PhoneNumber, &u.Email, pq.Array(&u.DietaryRestrictions), &u.AlcoholPreference,
			&u.PushNotifications, &u.EmailNotifications, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ==================== RECOMMENDATION SESSIONS ====================

// SaveSession persists a new session row. Older sessions for the same event
// are superseded, never deleted; retrieval picks the newest.
func (r *PostgresRepository) SaveSession(ctx context.Context, session *domain.RecommendationSession) error {
	entries, err := json.Marshal(session.Entries)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	excluded, err := json.Marshal(session.Excluded)
	if err != nil {
		return fmt.Errorf("failed to encode excluded restaurants: %w", err)
	}
	criteria, err := json.Marshal(session.Criteria)
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}

	session.ID = uuid.NewString()
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO recommendation_sessions (id, event_id, entries, excluded, criteria,
			model_used, confidence_score, threshold_crossed, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, session.ID, session.EventID, entries, excluded, criteria,
		session.ModelUsed, session.ConfidenceScore, session.ThresholdCrossed, session.GeneratedAt)
	return err
}

func (r *PostgresRepository) LatestSession(ctx context.Context, eventID string) (*domain.RecommendationSession, error) {
	var (
		session  domain.RecommendationSession
		entries  []byte
		excluded []byte
		criteria []byte
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, event_id, entries, excluded, criteria, model_used, confidence_score,
			threshold_crossed, generated_at
		FROM recommendation_sessions
		WHERE event_id = $1
		ORDER BY generated_at DESC
		LIMIT 1
	`, eventID).Scan(&session.ID, &session.EventID, &entries, &excluded, &criteria,
		&session.ModelUsed, &session.ConfidenceScore, &session.ThresholdCrossed, &session.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(entries, &session.Entries); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	if err := json.Unmarshal(excluded, &session.Excluded); err != nil {
		return nil, fmt.Errorf("failed to decode excluded restaurants: %w", err)
	}
	if err := json.Unmarshal(criteria, &session.Criteria); err != nil {
		return nil, fmt.Errorf("failed to decode criteria: %w", err)
	}
	return &session, nil
}

// ==================== BOOKING TASKS ====================

func (r *PostgresRepository) EnqueueBookingTask(eventID, sessionID string) error {
	_, err := r.DB.Exec(`
		INSERT INTO booking_tasks (event_id, session_id, status)
		VALUES ($1, $2, 'pending')
	`, eventID, sessionID)
	return err
}
