package rights

// spanishCatalog holds translated content. Types without a translation fall
// back to the English card at lookup time.
var spanishCatalog = map[string]baseCard{
	TypeTrafficStop: {
		Title: "Derechos Durante una Parada de Tráfico",
		Content: CardContent{
			Dos: []string{
				"Mantén las manos visibles en todo momento",
				"Mantén la calma y sé cortés",
				"Proporciona licencia, registro y seguro cuando se solicite",
				"Puedes permanecer en silencio más allá de la identificación básica",
			},
			Donts: []string{
				"No busques nada sin anunciarlo primero",
				"No discutas, resistas o huyas",
				"No consientas a registros sin una orden judicial",
				"No mientas o proporciones información falsa",
			},
			KeyRights: []string{
				"Derecho a permanecer en silencio",
				"Derecho a rechazar el consentimiento para registros",
				"Derecho a preguntar si eres libre de irte",
				"Derecho a grabar la interacción",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"Estoy ejerciendo mi derecho a permanecer en silencio",
				"No consiento a ningún registro",
				"¿Soy libre de irme?",
				"Me gustaría hablar con un abogado",
			},
			Responses: []string{
				"Entiendo, oficial",
				"Estoy cumpliendo con sus órdenes legales",
				"Estoy grabando esta interacción para mi seguridad",
			},
		},
	},
}
