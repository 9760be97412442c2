package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// commandsRun counts admitted command executions by command name.
	commandsRun = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atelier_commands_total",
			Help: "Total number of admitted command executions.",
		},
		[]string{"command"},
	)

	// gateDenials counts gate denials by reason. Denials are not logged
	// beyond this counter.
	gateDenials = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atelier_gate_denials_total",
			Help: "Total number of command invocations denied by the gate.",
		},
		[]string{"reason"},
	)

	// reactionRoleOps counts reaction-role grants and removals.
	reactionRoleOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atelier_reaction_roles_total",
			Help: "Total number of reaction-role grants and removals.",
		},
		[]string{"action"},
	)

	// handlerPanics counts panics recovered by the router wrapper.
	handlerPanics = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "atelier_handler_panics_total",
			Help: "Total number of panics recovered inside command handlers.",
		},
	)
)

func init() {
	prometheus.MustRegister(commandsRun, gateDenials, reactionRoleOps, handlerPanics)
}
