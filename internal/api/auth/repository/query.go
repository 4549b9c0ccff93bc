package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			first_name,
			last_name,
			email,
			password,
			is_author,
			is_admin,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:first_name,
			:last_name,
			:email,
			:password,
			:is_author,
			:is_admin,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			first_name,
			last_name,
			email,
			password,
			is_author,
			is_admin,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			username,
			first_name,
			last_name,
			email,
			password,
			is_author,
			is_admin,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			first_name,
			last_name,
			email,
			password,
			is_author,
			is_admin,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
	`

	queryUpdateUser = `
		UPDATE users
		SET
			first_name = CASE WHEN :first_name = '' THEN first_name ELSE :first_name END,
			last_name = CASE WHEN :last_name = '' THEN last_name ELSE :last_name END,
			password = CASE WHEN :password = '' THEN password ELSE :password END,
			updated_at = :updated_at
		WHERE id = :id
	`
)
