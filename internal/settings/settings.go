package settings

// SiteSettings is the singleton configuration document edited by operators.
// Branding and copy are consumed by the page renderers; ContactInfo.Email is
// the notification target for new quote requests.
type SiteSettings struct {
	ID          string      `bson:"_id,omitempty" json:"id,omitempty"`
	Branding    Branding    `bson:"branding" json:"branding"`
	ContactInfo ContactInfo `bson:"contactInfo" json:"contactInfo"`
	HomeContent HomeContent `bson:"homeContent" json:"homeContent"`
	Footer      Footer      `bson:"footerContent" json:"footerContent"`
}

type Branding struct {
	SiteName         string `bson:"siteName" json:"siteName"`
	Tagline          string `bson:"tagline" json:"tagline"`
	LogoKey          string `bson:"logoKey,omitempty" json:"logoKey,omitempty"`
	LogoHeight       int    `bson:"logoHeight,omitempty" json:"logoHeight,omitempty"`
	HeroLogoKey      string `bson:"heroLogoKey,omitempty" json:"heroLogoKey,omitempty"`
	HeroLogoHeight   int    `bson:"heroLogoHeight,omitempty" json:"heroLogoHeight,omitempty"`
	SplashLogoHeight int    `bson:"splashLogoHeight,omitempty" json:"splashLogoHeight,omitempty"`
}

type ContactInfo struct {
	Phone           string `bson:"phone" json:"phone"`
	PhoneLink       string `bson:"phoneLink" json:"phoneLink"`
	Email           string `bson:"email" json:"email"`
	Location        string `bson:"location" json:"location"`
	BusinessHours   string `bson:"businessHours" json:"businessHours"`
	GoogleMapsEmbed string `bson:"googleMapsEmbed,omitempty" json:"googleMapsEmbed,omitempty"`
}

type HomeContent struct {
	ServicesLabel       string `bson:"servicesLabel" json:"servicesLabel"`
	ServicesTitle       string `bson:"servicesTitle" json:"servicesTitle"`
	ServicesDescription string `bson:"servicesDescription" json:"servicesDescription"`
	ServicesButtonText  string `bson:"servicesButtonText" json:"servicesButtonText"`
	CTATitle            string `bson:"ctaTitle" json:"ctaTitle"`
	CTADescription      string `bson:"ctaDescription" json:"ctaDescription"`
	CTAButtonText       string `bson:"ctaButtonText" json:"ctaButtonText"`
}

type Footer struct {
	ContactHeading  string `bson:"contactHeading" json:"contactHeading"`
	ContactText     string `bson:"contactText" json:"contactText"`
	ContactLinkText string `bson:"contactLinkText" json:"contactLinkText"`
	CopyrightText   string `bson:"copyrightText,omitempty" json:"copyrightText,omitempty"`
}

// Defaults returns the settings document used until an operator edits it.
// Values mirror the site's launch content.
func Defaults() *SiteSettings {
	return &SiteSettings{
		Branding: Branding{
			SiteName: "North West Polishing",
			Tagline:  "Professional metal polishing and finishing services",
		},
		ContactInfo: ContactInfo{
			Phone:         "0161 123 4567",
			PhoneLink:     "01611234567",
			Email:         "info@nwpolishing.co.uk",
			Location:      "Manchester, UK",
			BusinessHours: "Mon–Fri 7am–5pm",
		},
		HomeContent: HomeContent{
			ServicesLabel:      "What We Do",
			ServicesTitle:      "Our Services",
			ServicesButtonText: "Find Out More",
			CTATitle:           "Get In Touch",
			CTAButtonText:      "Request Quote",
		},
		Footer: Footer{
			ContactHeading:  "Contact",
			ContactText:     "Get in touch for a quote",
			ContactLinkText: "Request Quote",
		},
	}
}
