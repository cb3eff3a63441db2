package portal

import "github.com/unidubna/portal/core/user"

type (
	ServicesContent struct {
		Audience string        `json:"audience"`
		Cards    []ServiceCard `json:"cards"`
	}

	ServiceCard struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Icon        string `json:"icon"`
	}
)

var studentServices = []ServiceCard{
	{
		Title:       "Оплата общежития",
		Description: "Внести плату за проживание в общежитии",
		URL:         "https://pay.uni-dubna.ru/hostel",
		Icon:        "🏠",
	},
	{
		Title:       "Оплата обучения",
		Description: "Внести плату за обучение по договору",
		URL:         "https://pay.uni-dubna.ru/edu",
		Icon:        "🎓",
	},
	{
		Title:       "Прочие платежи",
		Description: "Справки, дубликаты и другие услуги",
		URL:         "https://pay.uni-dubna.ru/other",
		Icon:        "💳",
	},
	{
		Title:       "Личный кабинет LMS",
		Description: "Курсы, задания и оценки",
		URL:         "https://lms.uni-dubna.ru",
		Icon:        "📚",
	},
}

var staffServices = []ServiceCard{
	{
		Title:       "LMS для преподавателей",
		Description: "Управление курсами и журналами",
		URL:         "https://lms.uni-dubna.ru",
		Icon:        "📚",
	},
	{
		Title:       "Служба поддержки",
		Description: "Заявки в техническую поддержку",
		URL:         "https://hd.uni-dubna.ru",
		Icon:        "🛠️",
	},
	{
		Title:       "Методические материалы",
		Description: "Общие шаблоны и инструкции",
		URL:         "https://goo.gl/kfk6Ss",
		Icon:        "📄",
	},
	{
		Title:       "Файловое хранилище",
		Description: "Корпоративный диск университета",
		URL:         "https://drive.uni-dubna.ru",
		Icon:        "🗄️",
	},
}

// ServicesPage composes the service launcher. The card set follows the
// session's base role; students never see the staff set even when the staff
// route was requested.
func ServicesPage(sess *user.Session) Page {
	route := RouteServices
	audience := user.RoleStudent
	cards := studentServices
	if sess.BaseRole == user.RoleStaff {
		route = RouteServicesStaff
		audience = user.RoleStaff
		cards = staffServices
	}

	return chrome(Page{
		Route: route,
		Title: "Services",
		Content: ServicesContent{
			Audience: audience,
			Cards:    cards,
		},
	})
}
