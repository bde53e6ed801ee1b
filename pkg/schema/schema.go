// Package schema is the single source of truth for request payload shapes,
// shared by the server handlers and any Go client. Constraints live in the
// binding tags so server and client cannot drift.
package schema

// SignupInput is the payload for POST /user/register.
type SignupInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"omitempty"`
}

// SigninInput is the payload for POST /user/login.
type SigninInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
}

// PostCreateInput is the payload for POST /post.
type PostCreateInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostUpdateInput is the payload for PUT /post/:id. All fields are
// optional; only present fields are applied. An empty object is valid at
// this layer and is treated as a no-op by the handler.
type PostUpdateInput struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

// IsEmpty reports whether the patch carries no fields.
func (in *PostUpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Content == nil && in.Published == nil
}
