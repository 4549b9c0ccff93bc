package policy

import (
	"os"
	"strconv"
)

// Variant captures the deployment-policy axes that differ between installs.
// It is loaded once at process start and injected into services.
type Variant struct {
	// DraftsHidden makes the public get-by-id path 404 on unpublished blogs.
	// The view counter never moves on that path either way.
	DraftsHidden bool
	// CommentDelete is AdminOnly under moderation policy, OwnerOnly otherwise.
	CommentDelete Capability
	// RepublishConflict turns publishing an already-published blog into a 409
	// instead of an idempotent no-op.
	RepublishConflict bool
	// AnonymousComments lets unauthenticated users post top-level comments.
	AnonymousComments bool
}

func DefaultVariant() Variant {
	return Variant{
		DraftsHidden:      true,
		CommentDelete:     AdminOnly,
		RepublishConflict: false,
		AnonymousComments: false,
	}
}

func VariantFromEnv() Variant {
	v := DefaultVariant()

	if raw := os.Getenv("BLOG_DRAFTS_HIDDEN"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			v.DraftsHidden = parsed
		}
	}
	if os.Getenv("COMMENT_DELETE_POLICY") == "owner" {
		v.CommentDelete = OwnerOnly
	}
	if raw := os.Getenv("REPUBLISH_CONFLICT"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			v.RepublishConflict = parsed
		}
	}
	if raw := os.Getenv("ANONYMOUS_COMMENTS"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			v.AnonymousComments = parsed
		}
	}

	return v
}
