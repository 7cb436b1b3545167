package user

type AuthMethod string

const (
	AuthMethodPhone AuthMethod = "phone"
	AuthMethodEmail AuthMethod = "email"
)

func (m AuthMethod) IsValid() bool {
	return m == AuthMethodPhone || m == AuthMethodEmail
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

type Profile struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	AuthMethod   AuthMethod `json:"authMethod"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	IsSubscribed bool       `json:"isSubscribed"`
	JoinedAt     string     `json:"joinedAt"`
}
