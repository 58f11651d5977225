package dataset

import "context"

// StaticTokenAuth авторизация закрытых http источников по выданному заранее
// токену. Токен не живёт и не обновляется, поэтому Authenticate ничего не делает.
type StaticTokenAuth struct {
	token string
}

func NewStaticTokenAuth(token string) StaticTokenAuth {
	return StaticTokenAuth{token: token}
}

func (a StaticTokenAuth) Authenticate(context.Context) error {
	return nil
}

func (a StaticTokenAuth) BearerToken() string {
	return a.token
}
