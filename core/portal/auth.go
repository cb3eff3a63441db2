package portal

type (
	LoginForm struct {
		Heading          string `json:"heading"`
		EmailPlaceholder string `json:"email_placeholder"`
		SubmitLabel      string `json:"submit_label"`
		RegisterHref     string `json:"register_href"`
		RegisterLabel    string `json:"register_label"`
	}

	RegisterForm struct {
		Heading          string `json:"heading"`
		Note             string `json:"note"`
		EmailPlaceholder string `json:"email_placeholder"`
		SubmitLabel      string `json:"submit_label"`
		LoginHref        string `json:"login_href"`
		LoginLabel       string `json:"login_label"`
	}
)

// LoginPage renders standalone, without the navigation chrome.
func LoginPage() Page {
	return Page{
		Route: RouteLogin,
		Title: "Sign in",
		Content: LoginForm{
			Heading:          "Sign in",
			EmailPlaceholder: "Email @uni-dubna.ru",
			SubmitLabel:      "Sign in",
			RegisterHref:     "/register",
			RegisterLabel:    "No account yet? Register",
		},
	}
}

func RegisterPage() Page {
	return Page{
		Route: RouteRegister,
		Title: "Registration",
		Content: RegisterForm{
			Heading:          "Registration",
			Note:             "For @uni-dubna.ru addresses",
			EmailPlaceholder: "Email @uni-dubna.ru",
			SubmitLabel:      "Register",
			LoginHref:        "/login",
			LoginLabel:       "Already registered? Sign in",
		},
	}
}
