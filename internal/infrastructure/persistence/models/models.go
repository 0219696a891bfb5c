package models

// All lists every persisted model in dependency order for auto migration.
func All() []any {
	return []any{
		&AgentModel{},
		&CustomerModel{},
		&CallModel{},
		&BookingModel{},
		&BookingModificationModel{},
		&NoteModel{},
	}
}
