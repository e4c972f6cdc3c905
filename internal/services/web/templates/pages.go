package templates

import "github.com/a-h/templ"

// Home composes the landing page shell around hero. A nil hero uses Hero.
func Home(lang string, hero templ.Component) templ.Component {
	if hero == nil {
		hero = Hero()
	}
	return Shell(HomeHead(), lang, hero)
}

// Landing is the landing page with the default Hero.
func Landing(lang string) templ.Component {
	return Home(lang, Hero())
}
