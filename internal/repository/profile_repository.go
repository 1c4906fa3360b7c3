package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"devconnect/internal/models"
)

type profileRepository struct {
	db *sqlx.DB
}

// profileRow is the flat shape profiles are stored in; the nested Profile
// document is assembled from it plus the experience/education tables.
type profileRow struct {
	ProfileID      string    `db:"profile_id"`
	UserID         string    `db:"user_id"`
	Company        string    `db:"company"`
	Website        string    `db:"website"`
	Location       string    `db:"location"`
	Bio            string    `db:"bio"`
	Status         string    `db:"status"`
	GithubUsername string    `db:"github_username"`
	Skills         string    `db:"skills"`
	Youtube        string    `db:"youtube"`
	Twitter        string    `db:"twitter"`
	Facebook       string    `db:"facebook"`
	Instagram      string    `db:"instagram"`
	Linkedin       string    `db:"linkedin"`
	UpdatedAt      time.Time `db:"updated_at"`
	UserName       string    `db:"user_name"`
	UserAvatar     string    `db:"user_avatar"`
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

const profileSelect = `
	SELECT p.profile_id, p.user_id, p.company, p.website, p.location, p.bio,
	       p.status, p.github_username, p.skills, p.youtube, p.twitter,
	       p.facebook, p.instagram, p.linkedin, p.updated_at,
	       u.name AS user_name, u.avatar AS user_avatar
	FROM profiles p
	JOIN users u ON u.user_id = p.user_id
`

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var row profileRow

	query := profileSelect + `WHERE p.user_id = $1`

	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return r.assemble(ctx, &row)
}

func (r *profileRepository) GetAll(ctx context.Context) ([]*models.Profile, error) {
	var rows []profileRow

	query := profileSelect + `ORDER BY p.updated_at DESC`

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*models.Profile, 0, len(rows))
	for i := range rows {
		profile, err := r.assemble(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// Upsert merges the patch field-by-field into the stored record, creating the
// record first when the user has no profile yet.
func (r *profileRepository) Upsert(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error) {
	var row profileRow

	err := r.db.GetContext(ctx, &row, profileSelect+`WHERE p.user_id = $1`, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	isNew := errors.Is(err, sql.ErrNoRows)
	if isNew {
		row.ProfileID = uuid.New().String()
		row.UserID = userID
	}

	applyPatch(&row, patch)
	row.UpdatedAt = time.Now()

	if isNew {
		query := `
			INSERT INTO profiles
			(profile_id, user_id, company, website, location, bio, status,
			 github_username, skills, youtube, twitter, facebook, instagram, linkedin, updated_at)
			VALUES
			(:profile_id, :user_id, :company, :website, :location, :bio, :status,
			 :github_username, :skills, :youtube, :twitter, :facebook, :instagram, :linkedin, :updated_at)
		`
		_, err = r.db.NamedExecContext(ctx, query, row)
	} else {
		query := `
			UPDATE profiles SET
				company = :company,
				website = :website,
				location = :location,
				bio = :bio,
				status = :status,
				github_username = :github_username,
				skills = :skills,
				youtube = :youtube,
				twitter = :twitter,
				facebook = :facebook,
				instagram = :instagram,
				linkedin = :linkedin,
				updated_at = :updated_at
			WHERE user_id = :user_id
		`
		_, err = r.db.NamedExecContext(ctx, query, row)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `DELETE FROM profiles WHERE user_id = $1`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, userID string, exp *models.Experience) error {
	profileID, err := r.profileID(ctx, userID)
	if err != nil {
		return err
	}

	exp.ExpID = uuid.New().String()
	exp.CreatedAt = time.Now()

	query := `
		INSERT INTO experience
		(exp_id, profile_id, title, company, location, from_date, to_date, current, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.ExecContext(ctx, query,
		exp.ExpID, profileID, exp.Title, exp.Company, exp.Location,
		exp.From, exp.To, exp.Current, exp.Description, exp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add experience: %w", err)
	}

	return nil
}

func (r *profileRepository) RemoveExperience(ctx context.Context, userID, expID string) error {
	query := `
		DELETE FROM experience
		WHERE exp_id = $1
		AND profile_id = (SELECT profile_id FROM profiles WHERE user_id = $2)
	`

	_, err := r.db.ExecContext(ctx, query, expID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove experience: %w", err)
	}

	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, userID string, edu *models.Education) error {
	profileID, err := r.profileID(ctx, userID)
	if err != nil {
		return err
	}

	edu.EduID = uuid.New().String()
	edu.CreatedAt = time.Now()

	query := `
		INSERT INTO education
		(edu_id, profile_id, school, degree, field_of_study, from_date, to_date, current, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.ExecContext(ctx, query,
		edu.EduID, profileID, edu.School, edu.Degree, edu.FieldOfStudy,
		edu.From, edu.To, edu.Current, edu.Description, edu.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add education: %w", err)
	}

	return nil
}

func (r *profileRepository) RemoveEducation(ctx context.Context, userID, eduID string) error {
	query := `
		DELETE FROM education
		WHERE edu_id = $1
		AND profile_id = (SELECT profile_id FROM profiles WHERE user_id = $2)
	`

	_, err := r.db.ExecContext(ctx, query, eduID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove education: %w", err)
	}

	return nil
}

func (r *profileRepository) profileID(ctx context.Context, userID string) (string, error) {
	var profileID string

	err := r.db.GetContext(ctx, &profileID, `SELECT profile_id FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get profile: %w", err)
	}

	return profileID, nil
}

func (r *profileRepository) assemble(ctx context.Context, row *profileRow) (*models.Profile, error) {
	var experience []models.Experience
	err := r.db.SelectContext(ctx, &experience, `
		SELECT exp_id, title, company, location, from_date, to_date, current, description, created_at
		FROM experience WHERE profile_id = $1
		ORDER BY created_at DESC
	`, row.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	var education []models.Education
	err = r.db.SelectContext(ctx, &education, `
		SELECT edu_id, school, degree, field_of_study, from_date, to_date, current, description, created_at
		FROM education WHERE profile_id = $1
		ORDER BY created_at DESC
	`, row.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get education: %w", err)
	}

	return &models.Profile{
		ProfileID: row.ProfileID,
		User: models.ProfileUser{
			UserID: row.UserID,
			Name:   row.UserName,
			Avatar: row.UserAvatar,
		},
		Company:        row.Company,
		Website:        row.Website,
		Location:       row.Location,
		Bio:            row.Bio,
		Status:         row.Status,
		GithubUsername: row.GithubUsername,
		Skills:         splitSkills(row.Skills),
		Social: models.Social{
			Youtube:   row.Youtube,
			Twitter:   row.Twitter,
			Facebook:  row.Facebook,
			Instagram: row.Instagram,
			Linkedin:  row.Linkedin,
		},
		Experience: experience,
		Education:  education,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func applyPatch(row *profileRow, patch models.ProfilePatch) {
	if patch.Company != nil {
		row.Company = *patch.Company
	}
	if patch.Website != nil {
		row.Website = *patch.Website
	}
	if patch.Location != nil {
		row.Location = *patch.Location
	}
	if patch.Bio != nil {
		row.Bio = *patch.Bio
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	if patch.GithubUsername != nil {
		row.GithubUsername = *patch.GithubUsername
	}
	if patch.Skills != nil {
		row.Skills = normalizeSkills(*patch.Skills)
	}
	if patch.Youtube != nil {
		row.Youtube = *patch.Youtube
	}
	if patch.Twitter != nil {
		row.Twitter = *patch.Twitter
	}
	if patch.Facebook != nil {
		row.Facebook = *patch.Facebook
	}
	if patch.Instagram != nil {
		row.Instagram = *patch.Instagram
	}
	if patch.Linkedin != nil {
		row.Linkedin = *patch.Linkedin
	}
}

// normalizeSkills trims each entry of a comma separated list.
func normalizeSkills(skills string) string {
	parts := splitSkills(skills)
	return strings.Join(parts, ",")
}

func splitSkills(skills string) []string {
	if skills == "" {
		return []string{}
	}

	raw := strings.Split(skills, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return parts
}
