package user

type LoginRequest struct {
	Name       string     `json:"name"`
	AuthMethod AuthMethod `json:"authMethod"`
	Identifier string     `json:"identifier"`
}

type LoginResponse struct {
	User  *Profile `json:"user"`
	Token string   `json:"token"`
}

type ThemePayload struct {
	Theme Theme `json:"theme"`
}
