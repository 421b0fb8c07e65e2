package types

// IngredientInput is the ingredient shape accepted on recipe writes.
// OrderIndex is optional; when omitted it defaults to the ingredient's
// position in the submitted array.
type IngredientInput struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
	OrderIndex *int    `json:"order_index"`
}

// CreateRecipeRequest is the POST /api/recipes body. Pointer fields let the
// handler distinguish a missing field from a zero value. Any client-supplied
// user_id is ignored; ownership always comes from the authenticated principal.
type CreateRecipeRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PrepTime    *int              `json:"prep_time"`
	CookTime    *int              `json:"cook_time"`
	Servings    *int              `json:"servings"`
	Difficulty  string            `json:"difficulty"`
	ImageURL    string            `json:"image_url"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// UpdateRecipeRequest is the PUT /api/recipes/:id body. Every field is
// optional; omitted fields are left untouched. Ingredients deserves care:
// a nil slice means the field was omitted, while a non-nil empty slice means
// the client sent "ingredients": [] and wants the whole set removed.
type UpdateRecipeRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	PrepTime    *int              `json:"prep_time"`
	CookTime    *int              `json:"cook_time"`
	Servings    *int              `json:"servings"`
	Difficulty  *string           `json:"difficulty"`
	ImageURL    *string           `json:"image_url"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// HasIngredients reports whether the ingredients field was present in the
// request body, including the explicit-empty case.
func (r *UpdateRecipeRequest) HasIngredients() bool {
	return r.Ingredients != nil
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
