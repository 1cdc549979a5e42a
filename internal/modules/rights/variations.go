package rights

// stateVariations keys additive content by (state code, interaction type).
// Entries append to the base card; they never replace or reorder it.
var stateVariations = map[string]map[string]Variation{
	"CA": {
		TypeTrafficStop: {
			AdditionalRights: []string{
				"Right to decline a roadside field sobriety test (refusal may have license consequences)",
				"Right to request the officer's name and badge number (CA Penal Code 830.10)",
			},
			AdditionalDos: []string{
				"Show your license through a closed window if you feel unsafe",
			},
		},
		TypeProtest: {
			AdditionalRights: []string{
				"Right to record police from any public place (CA Penal Code 148(g))",
			},
		},
	},
	"NY": {
		TypeTrafficStop: {
			AdditionalRights: []string{
				"Right to a written explanation for any vehicle search (NYPD consent-search form)",
			},
			AdditionalDos: []string{
				"Ask whether the stop is being recorded by a body-worn camera",
			},
		},
		TypeQuestioning: {
			AdditionalRights: []string{
				"Right to refuse a stop-and-frisk pat-down absent reasonable suspicion",
			},
		},
	},
	"TX": {
		TypeTrafficStop: {
			AdditionalRights: []string{
				"Duty to identify applies only after a lawful arrest (TX Penal Code 38.02)",
			},
			AdditionalDos: []string{
				"Tell the officer immediately if you are lawfully carrying a firearm",
			},
		},
	},
	"IL": {
		TypeTrafficStop: {
			AdditionalRights: []string{
				"Right to receive a receipt for any property taken during a search",
			},
		},
		TypeArrest: {
			AdditionalRights: []string{
				"Right to make phone calls within three hours of arriving at the station (IL 725 ILCS 5/103-3)",
			},
		},
	},
	"WA": {
		TypeQuestioning: {
			AdditionalRights: []string{
				"No general duty to identify yourself absent a traffic stop or arrest",
			},
			AdditionalDos: []string{
				"Ask for an interpreter if you need one before answering",
			},
		},
	},
}
