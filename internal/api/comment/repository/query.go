package commentRepository

const (
	commentColumns = `
			id,
			body,
			author,
			blog_id,
			parent_id,
			created_at,
			updated_at
	`

	queryCreateComment = `
		INSERT INTO comments (
			id,
			body,
			author,
			blog_id,
			parent_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:body,
			:author,
			:blog_id,
			:parent_id,
			:created_at,
			:updated_at
		)
	`

	queryGetCommentByID = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE id = :id
	`

	queryGetCommentsByBlog = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE blog_id = :blog_id
		ORDER BY created_at ASC
	`

	queryGetRepliesByBlog = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_id IN (SELECT id FROM comments WHERE blog_id = :blog_id)
		ORDER BY created_at ASC
	`

	queryGetReplies = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE parent_id = :parent_id
		ORDER BY created_at ASC
	`

	// Replies go first, then the comment itself. With a two-level tree the
	// subquery can never recurse further.
	queryDeleteReplies = `
		DELETE FROM comments WHERE parent_id = :id
	`

	queryDeleteComment = `
		DELETE FROM comments WHERE id = :id
	`

	queryGetBlogRef = `
		SELECT id, author, is_published
		FROM blogs
		WHERE id = :id
	`
)
