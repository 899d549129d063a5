package database

type countrySeed struct {
	Code   string
	Name   string
	States []string
}

type planSeed struct {
	Name          string
	Price         string
	OriginalPrice string
	Description   string
	Features      []string
	IsPopular     bool
}

var countrySeeds = []countrySeed{
	{
		Code: "IN",
		Name: "India",
		States: []string{
			"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
			"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
			"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
			"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
			"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
			"West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
			"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Jammu and Kashmir",
			"Ladakh", "Lakshadweep", "Puducherry",
		},
	},
	{
		Code: "US",
		Name: "United States",
		States: []string{
			"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
			"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
			"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
			"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
			"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
			"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
			"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
			"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
			"Washington", "West Virginia", "Wisconsin", "Wyoming",
		},
	},
	{
		Code: "CN",
		Name: "China",
		States: []string{
			"Anhui", "Beijing", "Chongqing", "Fujian", "Gansu", "Guangdong", "Guangxi",
			"Guizhou", "Hainan", "Hebei", "Heilongjiang", "Henan", "Hong Kong", "Hubei",
			"Hunan", "Inner Mongolia", "Jiangsu", "Jiangxi", "Jilin", "Liaoning",
			"Macau", "Ningxia", "Qinghai", "Shaanxi", "Shandong", "Shanghai", "Shanxi",
			"Sichuan", "Tianjin", "Tibet", "Xinjiang", "Yunnan", "Zhejiang",
		},
	},
	{
		Code: "DE",
		Name: "Germany",
		States: []string{
			"Baden-Württemberg", "Bavaria", "Berlin", "Brandenburg", "Bremen",
			"Hamburg", "Hesse", "Lower Saxony", "Mecklenburg-Vorpommern",
			"North Rhine-Westphalia", "Rhineland-Palatinate", "Saarland", "Saxony",
			"Saxony-Anhalt", "Schleswig-Holstein", "Thuringia",
		},
	},
	{
		Code: "JP",
		Name: "Japan",
		States: []string{
			"Aichi", "Akita", "Aomori", "Chiba", "Ehime", "Fukui", "Fukuoka",
			"Fukushima", "Gifu", "Gunma", "Hiroshima", "Hokkaido", "Hyogo", "Ibaraki",
			"Ishikawa", "Iwate", "Kagawa", "Kagoshima", "Kanagawa", "Kochi", "Kumamoto",
			"Kyoto", "Mie", "Miyagi", "Miyazaki", "Nagano", "Nagasaki", "Nara",
			"Niigata", "Oita", "Okayama", "Okinawa", "Osaka", "Saga", "Saitama",
			"Shiga", "Shimane", "Shizuoka", "Tochigi", "Tokushima", "Tokyo", "Tottori",
			"Toyama", "Wakayama", "Yamagata", "Yamaguchi", "Yamanashi",
		},
	},
	{
		Code: "GB",
		Name: "United Kingdom",
		States: []string{
			"England", "Scotland", "Wales", "Northern Ireland",
		},
	},
	{
		Code: "FR",
		Name: "France",
		States: []string{
			"Auvergne-Rhône-Alpes", "Bourgogne-Franche-Comté", "Brittany",
			"Centre-Val de Loire", "Corsica", "Grand Est", "Hauts-de-France",
			"Île-de-France", "Normandy", "Nouvelle-Aquitaine", "Occitanie",
			"Pays de la Loire", "Provence-Alpes-Côte d'Azur",
		},
	},
	{
		Code: "IT",
		Name: "Italy",
		States: []string{
			"Abruzzo", "Aosta Valley", "Apulia", "Basilicata", "Calabria", "Campania",
			"Emilia-Romagna", "Friuli-Venezia Giulia", "Lazio", "Liguria", "Lombardy",
			"Marche", "Molise", "Piedmont", "Sardinia", "Sicily", "Trentino-Alto Adige",
			"Tuscany", "Umbria", "Veneto",
		},
	},
	{
		Code: "CA",
		Name: "Canada",
		States: []string{
			"Alberta", "British Columbia", "Manitoba", "New Brunswick",
			"Newfoundland and Labrador", "Northwest Territories", "Nova Scotia",
			"Nunavut", "Ontario", "Prince Edward Island", "Quebec", "Saskatchewan",
			"Yukon",
		},
	},
	{
		Code: "BR",
		Name: "Brazil",
		States: []string{
			"Acre", "Alagoas", "Amapá", "Amazonas", "Bahia", "Ceará",
			"Distrito Federal", "Espírito Santo", "Goiás", "Maranhão", "Mato Grosso",
			"Mato Grosso do Sul", "Minas Gerais", "Pará", "Paraíba", "Paraná",
			"Pernambuco", "Piauí", "Rio de Janeiro", "Rio Grande do Norte",
			"Rio Grande do Sul", "Rondônia", "Roraima", "Santa Catarina", "São Paulo",
			"Sergipe", "Tocantins",
		},
	},
}

var categorySeeds = []string{
	"Retail", "Wholesale", "Services", "Manufacturing", "Food & Beverage",
	"Healthcare", "Education", "Technology", "Construction", "Finance",
}

var currencySeeds = []struct{ Code, Name string }{
	{"INR", "Indian Rupee"},
	{"USD", "US Dollar"},
	{"EUR", "Euro"},
	{"GBP", "British Pound"},
	{"JPY", "Japanese Yen"},
	{"CNY", "Chinese Yuan"},
	{"CAD", "Canadian Dollar"},
	{"BRL", "Brazilian Real"},
}

var planSeeds = []planSeed{
	{
		Name:          "Starter",
		Price:         "10900",
		OriginalPrice: "13900",
		Description:   "Perfect for small businesses and freelancers getting started",
		Features: []string{
			"Invoice management for up to 100 clients",
			"Basic expense tracking and categorization",
			"Monthly financial reports and insights",
			"Email support with 24hr response",
			"Mobile app with offline access",
			"Professional invoice templates",
			"Basic payment gateway integration",
			"Export data to CSV/PDF formats",
		},
	},
	{
		Name:          "Professional",
		Price:         "30900",
		OriginalPrice: "40900",
		Description:   "Advanced features for growing businesses with complex needs",
		Features: []string{
			"Unlimited client and project management",
			"Advanced expense tracking with AI categorization",
			"Real-time financial analytics and forecasting",
			"Priority support with phone and chat assistance",
			"Multi-device sync with cloud backup",
			"Custom branding and white-label templates",
			"Automated recurring invoices and reminders",
			"Tax preparation tools and compliance reports",
			"Advanced reporting with 50+ templates",
			"API access for third-party integrations",
		},
		IsPopular: true,
	},
	{
		Name:          "Enterprise",
		Price:         "50900",
		OriginalPrice: "75900",
		Description:   "Complete solution for large organizations and teams",
		Features: []string{
			"Everything in Professional plan",
			"Advanced team collaboration and role management",
			"Custom integrations and full API access",
			"Dedicated account manager and onboarding",
			"Enterprise-grade security and compliance",
			"White-label solutions with custom domains",
			"Custom workflow automation and approvals",
			"Priority feature requests and development",
			"On-site training and implementation support",
			"Advanced audit trails and user permissions",
			"Multi-company and subsidiary management",
			"Custom SLA with 99.9% uptime guarantee",
		},
	},
}
