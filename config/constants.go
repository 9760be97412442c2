package config

// RoleMemberName - Fallback name of the verified member role
const RoleMemberName = "Membre"

// RoleNonVerifiedName - Fallback name of the non-verified role
const RoleNonVerifiedName = "Non vérifié"

// AcceptEmoji - Accept control on access-request journal messages
const AcceptEmoji = "✅"

// RefuseEmoji - Refuse control on access-request journal messages
const RefuseEmoji = "❌"

// DeniedMessage - Generic private reply on any gate denial
const DeniedMessage = "Cette commande n'est pas disponible ici."

// FailureMessage - Generic private reply on internal errors
const FailureMessage = "Une erreur est survenue, réessaie un peu plus tard."

// ChannelOverrideNotice - Visible warning for an admin using a command
// outside its configured channel
const ChannelOverrideNotice = "⚠️ Ce salon n'est pas le salon configuré pour cette commande."

// DefaultValidationMessage - DM sent after an access request is accepted,
// unless message_validation overrides it
const DefaultValidationMessage = "Bienvenue ! Ta demande d'accès a été acceptée, tu as maintenant accès au serveur. 🎉"

// DefaultRefusalMessage - DM sent after an access request is refused
const DefaultRefusalMessage = "Ta demande d'accès n'a pas été retenue pour le moment."
