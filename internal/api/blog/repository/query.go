package blogRepository

const (
	blogColumns = `
			id,
			title,
			body,
			image_url,
			author,
			views,
			is_published,
			tags,
			seo_title,
			seo_description,
			created_at,
			updated_at
	`

	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			body,
			image_url,
			author,
			views,
			is_published,
			tags,
			seo_title,
			seo_description,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:body,
			:image_url,
			:author,
			:views,
			:is_published,
			:tags,
			:seo_title,
			:seo_description,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = :id
	`

	// Single atomic statement: the view counter only moves when the blog is
	// already published, and the read returns the post-increment row.
	queryGetPublishedAndIncrementViews = `
		UPDATE blogs
		SET views = views + 1
		WHERE id = :id AND is_published = TRUE
		RETURNING ` + blogColumns + `
	`

	queryGetPublishedBlogs = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE is_published = TRUE
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountPublishedBlogs = `
		SELECT COUNT(*) FROM blogs WHERE is_published = TRUE
	`

	queryGetBlogsByAuthor = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE author = :author
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByAuthor = `
		SELECT COUNT(*) FROM blogs WHERE author = :author
	`

	searchPublishedWhere = `
		WHERE is_published = TRUE
			AND (:q = '' OR title ILIKE '%' || :q || '%' OR body ILIKE '%' || :q || '%')
			AND (:tag = '' OR :tag = ANY(tags))
			AND (:category_id = '' OR id IN (
				SELECT blog_id FROM blog_category_links WHERE category_id = :category_id
			))
	`

	querySearchPublishedBlogs = `
		SELECT ` + blogColumns + `
		FROM blogs
	` + searchPublishedWhere + `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountSearchPublishedBlogs = `
		SELECT COUNT(*) FROM blogs
	` + searchPublishedWhere

	// Related posts share at least one tag or one category with the source
	// blog, drafts excluded.
	queryGetRelatedBlogs = `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE is_published = TRUE
			AND id <> :id
			AND (
				tags && :tags
				OR id IN (
					SELECT l2.blog_id
					FROM blog_category_links l1
					JOIN blog_category_links l2 ON l1.category_id = l2.category_id
					WHERE l1.blog_id = :id
				)
			)
		ORDER BY created_at DESC
		LIMIT :limit
	`

	// Author, views and is_published are never writable through an update.
	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			body = :body,
			image_url = :image_url,
			tags = :tags,
			seo_title = :seo_title,
			seo_description = :seo_description,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryPublishBlog = `
		UPDATE blogs
		SET is_published = TRUE, updated_at = :updated_at
		WHERE id = :id
		RETURNING ` + blogColumns + `
	`

	queryDeleteBlog = `
		DELETE FROM blogs WHERE id = :id
	`

	queryDeleteCategoryLinksByBlog = `
		DELETE FROM blog_category_links WHERE blog_id = :blog_id
	`

	queryInsertCategoryLink = `
		INSERT INTO blog_category_links (blog_id, category_id)
		VALUES (:blog_id, :category_id)
	`

	queryGetCategoryIDsByBlog = `
		SELECT category_id FROM blog_category_links WHERE blog_id = :blog_id
	`

	// Removes a blog's replies first, then its top-level comments, in one
	// statement. Part of the blog delete cascade.
	queryDeleteCommentsByBlog = `
		DELETE FROM comments
		WHERE blog_id = :blog_id
			OR parent_id IN (SELECT id FROM comments WHERE blog_id = :blog_id)
	`

	queryCreateCategory = `
		INSERT INTO blog_categories (
			id,
			name,
			description,
			author,
			created_at
		) VALUES (
			:id,
			:name,
			:description,
			:author,
			:created_at
		)
	`

	queryGetAllCategories = `
		SELECT id, name, description, author, created_at
		FROM blog_categories
		ORDER BY name ASC
	`

	queryGetCategoryByID = `
		SELECT id, name, description, author, created_at
		FROM blog_categories
		WHERE id = :id
	`

	queryUpdateCategory = `
		UPDATE blog_categories
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			description = CASE WHEN :description = '' THEN description ELSE :description END
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM blog_categories WHERE id = :id
	`

	queryDeleteCategoryLinksByCategory = `
		DELETE FROM blog_category_links WHERE category_id = :category_id
	`

	queryCountExistingCategories = `
		SELECT COUNT(*) FROM blog_categories WHERE id = ANY(:ids)
	`

	queryAddLike = `
		INSERT INTO blog_likes (blog_id, user_id, created_at)
		VALUES (:blog_id, :user_id, :created_at)
		ON CONFLICT (blog_id, user_id) DO NOTHING
	`

	queryRemoveLike = `
		DELETE FROM blog_likes WHERE blog_id = :blog_id AND user_id = :user_id
	`

	queryCountLikes = `
		SELECT COUNT(*) FROM blog_likes WHERE blog_id = :blog_id
	`

	queryDeleteLikesByBlog = `
		DELETE FROM blog_likes WHERE blog_id = :blog_id
	`
)
