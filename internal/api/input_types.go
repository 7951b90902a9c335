package api

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type deviceTokenInput struct {
	Token string `json:"token"`
}

type notifyInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendNotificationInput struct {
	FriendToken string `json:"friendToken"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}
