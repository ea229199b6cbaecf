package repositories

import (
	"database/sql"

	"storefront/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	UpdatePassword(userID int, passwordHash string) error
	Delete(id int) error
	List(limit, offset int) ([]*models.User, error)
	GetCount() (int, error)

	// verification helpers
	SaveVerificationState(user *models.User) error
	SaveResetCode(userID int, code *string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, email, username, password_hash, membership_level, membership_expiry,
	is_active, is_superuser, is_verified,
	verification_code, verification_code_expires_at, verification_attempts, last_verification_sent_at,
	reset_password_code, created_at, updated_at
`

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (
			email, username, password_hash, membership_level, membership_expiry,
			is_active, is_superuser, is_verified,
			verification_code, verification_code_expires_at, verification_attempts, last_verification_sent_at,
			reset_password_code, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	if user.MembershipLevel == "" {
		user.MembershipLevel = models.MembershipFree
	}
	return r.DB.QueryRow(q,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.MembershipLevel,
		user.MembershipExpiry,
		user.IsActive,
		user.IsSuperuser,
		user.IsVerified,
		user.VerificationCode,
		user.VerificationCodeExpiresAt,
		user.VerificationAttempts,
		user.LastVerificationSentAt,
		user.ResetPasswordCode,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		memExpiry sql.NullTime
		vCode     sql.NullString
		vExpires  sql.NullTime
		vSentAt   sql.NullTime
		resetCode sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.MembershipLevel, &memExpiry,
		&u.IsActive, &u.IsSuperuser, &u.IsVerified,
		&vCode, &vExpires, &u.VerificationAttempts, &vSentAt,
		&resetCode, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if memExpiry.Valid {
		t := memExpiry.Time
		u.MembershipExpiry = &t
	}
	if vCode.Valid {
		s := vCode.String
		u.VerificationCode = &s
	}
	if vExpires.Valid {
		t := vExpires.Time
		u.VerificationCodeExpiresAt = &t
	}
	if vSentAt.Valid {
		t := vSentAt.Time
		u.LastVerificationSentAt = &t
	}
	if resetCode.Valid {
		s := resetCode.String
		u.ResetPasswordCode = &s
	}
	return u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	return scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET
			email=$1,
			username=$2,
			password_hash=$3,
			membership_level=$4,
			membership_expiry=$5,
			is_active=$6,
			is_superuser=$7,
			is_verified=$8,
			updated_at=NOW()
		WHERE id=$9
	`
	_, err := r.DB.Exec(q,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.MembershipLevel,
		user.MembershipExpiry,
		user.IsActive,
		user.IsSuperuser,
		user.IsVerified,
		user.ID,
	)
	return err
}

func (r *userRepository) UpdatePassword(userID int, passwordHash string) error {
	_, err := r.DB.Exec(`
		UPDATE users SET password_hash=$1, updated_at=NOW() WHERE id=$2
	`, passwordHash, userID)
	return err
}

func (r *userRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id=$1`, id)
	return err
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	rows, err := r.DB.Query(`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u := &models.User{}
		var (
			memExpiry sql.NullTime
			vCode     sql.NullString
			vExpires  sql.NullTime
			vSentAt   sql.NullTime
			resetCode sql.NullString
		)
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.MembershipLevel, &memExpiry,
			&u.IsActive, &u.IsSuperuser, &u.IsVerified,
			&vCode, &vExpires, &u.VerificationAttempts, &vSentAt,
			&resetCode, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if memExpiry.Valid {
			t := memExpiry.Time
			u.MembershipExpiry = &t
		}
		if vCode.Valid {
			s := vCode.String
			u.VerificationCode = &s
		}
		if vExpires.Valid {
			t := vExpires.Time
			u.VerificationCodeExpiresAt = &t
		}
		if vSentAt.Valid {
			t := vSentAt.Time
			u.LastVerificationSentAt = &t
		}
		if resetCode.Valid {
			s := resetCode.String
			u.ResetPasswordCode = &s
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *userRepository) GetCount() (int, error) {
	var c int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&c)
	return c, err
}

// ===== verification helpers =====

// SaveVerificationState persists the code lifecycle columns plus the
// activation flags they flip. One write per send/verify operation.
func (r *userRepository) SaveVerificationState(user *models.User) error {
	const q = `
		UPDATE users
		SET
			verification_code=$1,
			verification_code_expires_at=$2,
			verification_attempts=$3,
			last_verification_sent_at=$4,
			is_active=$5,
			is_verified=$6,
			updated_at=NOW()
		WHERE id=$7
	`
	_, err := r.DB.Exec(q,
		user.VerificationCode,
		user.VerificationCodeExpiresAt,
		user.VerificationAttempts,
		user.LastVerificationSentAt,
		user.IsActive,
		user.IsVerified,
		user.ID,
	)
	return err
}

func (r *userRepository) SaveResetCode(userID int, code *string) error {
	_, err := r.DB.Exec(`
		UPDATE users SET reset_password_code=$1, updated_at=NOW() WHERE id=$2
	`, code, userID)
	return err
}
