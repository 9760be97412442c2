package handlers

import (
	"github.com/Lukaesebrot/dgc"
)

// Router builds the command router. Predicate flags (admin, verified,
// unverified) are enforced by the gate middleware; the remaining flags are
// the category names the ACL check merges in.
func (b *Bot) Router() *dgc.Router {
	router := dgc.Create(&dgc.Router{
		Prefixes:         []string{b.Cfg.Prefix},
		IgnorePrefixCase: true,
		BotsAllowed:      false,
	})

	// Admin bind commands.
	router.RegisterCmd(&dgc.Command{
		Name:        "config_salon",
		Description: "Réserve une commande à un salon",
		Usage:       "config_salon <commande> <#salon>",
		Example:     "config_salon checkin #humeurs",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.ConfigSalonHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "config_redirection",
		Description: "Lie un type de redirection à un salon",
		Usage:       "config_redirection <type> <#salon>",
		Example:     "config_redirection burnout #journal-burnout",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.ConfigRedirectionHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "config_option",
		Description: "Fixe une option nommée de la configuration",
		Usage:       "config_option <nom> <valeur>",
		Example:     "config_option journal_validation_channel #validation",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.ConfigOptionHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "config_recap",
		Description: "Programme le récap hebdomadaire",
		Usage:       "config_recap <#salon> <jour> <hh:mm> [@role]",
		Example:     "config_recap #general dimanche 18:00 @Membre",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.ConfigRecapHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "reactionrole",
		Description: "Lie un emoji d'un message à un rôle",
		Usage:       "reactionrole <message-id> <emoji> <@role> [#salon]",
		Example:     "reactionrole 555 🎓 @Étudiant #annonces",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.ReactionRoleHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "reactionrole_stop",
		Description: "Délie un emoji d'un message",
		Usage:       "reactionrole_stop <message-id> <emoji>",
		Example:     "reactionrole_stop 555 🎓",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.ReactionRoleStopHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "permission",
		Description: "Autorise un rôle ou un membre sur une commande ou une catégorie",
		Usage:       "permission <commande-ou-catégorie> <@role|@user>",
		Example:     "permission config @Staff",
		Flags:       []string{FlagAdmin, "config"},
		IgnoreCase:  true,
		Handler:     b.PermissionHandler,
	})

	// Onboarding.
	router.RegisterCmd(&dgc.Command{
		Name:        "demander_acces",
		Description: "Demande l'accès au serveur",
		Usage:       "demander_acces",
		Example:     "demander_acces",
		Flags:       []string{FlagUnverified, "whitelist"},
		IgnoreCase:  true,
		Handler:     b.DemanderAccesHandler,
	})

	// Reminders.
	router.RegisterCmd(&dgc.Command{
		Name:        "rappel",
		Description: "Programme un rappel par message privé",
		Usage:       "rappel <hh:mm> [quotidien] <message>",
		Example:     "rappel 09:00 quotidien boire de l'eau",
		Flags:       []string{FlagVerified, "rappels"},
		IgnoreCase:  true,
		Handler:     b.RappelHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "rappels",
		Description: "Liste tes rappels",
		Usage:       "rappels",
		Example:     "rappels",
		Flags:       []string{FlagVerified, "rappels"},
		IgnoreCase:  true,
		Handler:     b.RappelsHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "rappel_stop",
		Description: "Supprime un de tes rappels",
		Usage:       "rappel_stop <id>",
		Example:     "rappel_stop 3f1c…",
		Flags:       []string{FlagVerified, "rappels"},
		IgnoreCase:  true,
		Handler:     b.RappelStopHandler,
	})

	// Productivity and community features.
	router.RegisterCmd(&dgc.Command{
		Name:        "checkin",
		Description: "Note ton humeur du moment",
		Usage:       "checkin <humeur>",
		Example:     "checkin plutôt motivé aujourd'hui",
		Flags:       []string{FlagVerified, "perso"},
		IgnoreCase:  true,
		Handler:     b.CheckinHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "humeur",
		Description: "Affiche tes derniers check-ins",
		Usage:       "humeur",
		Example:     "humeur",
		Flags:       []string{FlagVerified, "perso"},
		IgnoreCase:  true,
		Handler:     b.HumeurHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "pomodoro",
		Description: "Ajoute des minutes de focus à ton compteur",
		Usage:       "pomodoro [minutes]",
		Example:     "pomodoro 25",
		Flags:       []string{FlagVerified, "perso"},
		IgnoreCase:  true,
		Handler:     b.PomodoroHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "objectif",
		Description: "Gère ta liste d'objectifs",
		Usage:       "objectif add <texte> | done <n> | list",
		Example:     "objectif add lire 20 pages",
		Flags:       []string{FlagVerified, "perso"},
		IgnoreCase:  true,
		Handler:     b.ObjectifHandler,
	})
	router.RegisterCmd(&dgc.Command{
		Name:        "citation",
		Description: "Ajoute une citation à la bibliothèque partagée",
		Usage:       "citation <texte>",
		Example:     "citation la régularité bat l'intensité",
		Flags:       []string{FlagVerified, "communaute"},
		IgnoreCase:  true,
		Handler:     b.CitationHandler,
	})

	// dgc wraps middlewares in registration order, so the last one
	// registered runs outermost. Recover goes last: a panic inside the
	// gate is recovered too.
	router.RegisterMiddleware(b.Gate)
	router.RegisterMiddleware(b.Recover)

	return router
}
