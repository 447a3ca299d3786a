package models

type CreatePortfolioRequest struct {
	Template string `json:"template" validate:"required,oneof=terminal infographic cascade gallery nova kyoto"`
}

type CreatePortfolioResponse struct {
	Message   string     `json:"message"`
	Portfolio *Portfolio `json:"portfolio"`
}

type MeResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

// PublicPortfolio is what an unauthenticated share-link resolves to: the
// chosen template plus the owner's resume, nothing else about the owner.
type PublicPortfolio struct {
	Title    string      `json:"title"`
	Template string      `json:"template"`
	Resume   *ResumeData `json:"resume"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
