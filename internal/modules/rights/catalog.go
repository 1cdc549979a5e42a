package rights

// englishCatalog is the base English content per interaction type.
var englishCatalog = map[string]baseCard{
	TypeTrafficStop: {
		Title: "Traffic Stop Rights",
		Content: CardContent{
			Dos: []string{
				"Keep your hands visible at all times",
				"Remain calm and polite",
				"Provide license, registration, and insurance when asked",
				"You can remain silent beyond basic identification",
				"Inform passengers of their rights",
				"Ask if you are free to leave",
			},
			Donts: []string{
				"Don't reach for anything without announcing it first",
				"Don't argue, resist, or run",
				"Don't consent to searches without a warrant",
				"Don't lie or provide false information",
				"Don't get out of the car unless ordered",
				"Don't touch the officer or their equipment",
			},
			KeyRights: []string{
				"Right to remain silent (5th Amendment)",
				"Right to refuse consent to search (4th Amendment)",
				"Right to ask if you're free to leave",
				"Right to record the interaction",
				"Right to an attorney if arrested",
				"Right to know why you're being stopped",
			},
			EmergencyContacts: []string{
				"ACLU: 1-212-549-2500",
				"Legal Aid: 211",
				"National Lawyers Guild: 1-415-285-1011",
			},
			LegalResources: []string{
				"ACLU Know Your Rights",
				"Electronic Frontier Foundation",
				"National Lawyers Guild",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"I am exercising my right to remain silent",
				"I do not consent to any searches",
				"Am I free to leave?",
				"I would like to speak to an attorney",
				"I am recording this interaction for my safety",
			},
			Responses: []string{
				"I understand, officer",
				"I am complying with your lawful orders",
				"I need to reach for my [license/registration/insurance]",
				"I prefer to remain silent",
			},
			EmergencyPhrases: []string{
				"I need medical attention",
				"I am having difficulty breathing",
				"I need to contact my attorney immediately",
				"I am being harmed",
			},
		},
	},
	TypeQuestioning: {
		Title: "Police Questioning Rights",
		Content: CardContent{
			Dos: []string{
				"Ask if you are free to leave",
				"Remain calm and polite",
				"Ask for identification if not in uniform",
				"Remember details for later",
				"Ask for a lawyer if arrested",
				"Provide only basic identification if required",
			},
			Donts: []string{
				"Don't answer questions without a lawyer present",
				"Don't consent to searches",
				"Don't lie or provide false information",
				"Don't resist or argue",
				"Don't sign anything without reading",
				"Don't go anywhere voluntarily",
			},
			KeyRights: []string{
				"Right to remain silent",
				"Right to leave if not detained",
				"Right to refuse to answer questions",
				"Right to an attorney",
				"Right to know if you're being detained",
				"Right to record the interaction",
			},
			EmergencyContacts: []string{
				"ACLU: 1-212-549-2500",
				"Legal Aid: 211",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"Am I free to leave?",
				"I am exercising my right to remain silent",
				"I do not wish to answer questions",
				"I want to speak to a lawyer",
				"I do not consent to any searches",
			},
			Responses: []string{
				"I understand",
				"I prefer not to answer questions",
				"I would like to leave now",
				"I am recording this interaction",
			},
		},
	},
	TypeHomeSearch: {
		Title: "Home Search Rights",
		Content: CardContent{
			Dos: []string{
				"Ask to see the warrant",
				"Read the warrant carefully",
				"Ask what they are looking for",
				"Remain calm and observe",
				"Take notes or record if possible",
				"Ask for a copy of the warrant",
			},
			Donts: []string{
				"Don't consent to a search without a warrant",
				"Don't interfere with the search",
				"Don't answer questions without a lawyer",
				"Don't sign anything",
				"Don't let them expand beyond the warrant",
				"Don't leave them alone in your home",
			},
			KeyRights: []string{
				"Right to see the warrant",
				"Right to refuse warrantless searches",
				"Right to remain silent",
				"Right to an attorney",
				"Right to observe the search",
				"Right to record the interaction",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"I do not consent to a search",
				"May I see your warrant?",
				"I am exercising my right to remain silent",
				"I want to speak to my attorney",
				"I am recording this interaction",
			},
			Responses: []string{
				"I understand you have a warrant",
				"I am not interfering with your search",
				"I prefer to remain silent",
				"I am observing for my protection",
			},
		},
	},
	TypeArrest: {
		Title: "Arrest Rights",
		Content: CardContent{
			Dos: []string{
				"Remain calm and don't resist",
				"Ask why you're being arrested",
				"Ask for a lawyer immediately",
				"Remember the Miranda rights",
				"Ask for medical attention if needed",
				"Try to remember badge numbers and details",
			},
			Donts: []string{
				"Don't resist arrest",
				"Don't answer questions without a lawyer",
				"Don't sign anything",
				"Don't consent to searches",
				"Don't make any statements",
				"Don't argue about the arrest",
			},
			KeyRights: []string{
				"Right to remain silent (Miranda rights)",
				"Right to an attorney",
				"Right to know charges against you",
				"Right to a phone call",
				"Right to medical attention",
				"Right to refuse to sign anything",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"I am exercising my right to remain silent",
				"I want to speak to a lawyer",
				"I do not consent to any searches",
				"Why am I being arrested?",
				"I need medical attention",
			},
			Responses: []string{
				"I understand I am under arrest",
				"I am not resisting",
				"I prefer to remain silent",
				"I want my attorney present",
			},
		},
	},
	TypeProtest: {
		Title: "Protest Rights",
		Content: CardContent{
			Dos: []string{
				"Stay on public sidewalks and parks",
				"Remain calm and peaceful",
				"Keep a written record of officer names and badge numbers",
				"Photograph or record events in plain view",
				"Follow lawful dispersal orders after they are announced",
				"Write a legal-support phone number on your arm",
			},
			Donts: []string{
				"Don't block building entrances or traffic without a permit",
				"Don't physically resist officers",
				"Don't consent to searches of your belongings",
				"Don't unlock your phone for anyone",
				"Don't touch or push police lines",
				"Don't carry anything you can't afford to lose",
			},
			KeyRights: []string{
				"Right to peacefully assemble (1st Amendment)",
				"Right to photograph or record police in public",
				"Right to remain silent",
				"Right to refuse consent to search",
				"Right to an attorney if detained",
				"Right to ask why you are being detained",
			},
			EmergencyContacts: []string{
				"National Lawyers Guild: 1-415-285-1011",
				"ACLU: 1-212-549-2500",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"I am exercising my First Amendment rights",
				"Am I being detained, or am I free to go?",
				"I do not consent to any searches",
				"I am exercising my right to remain silent",
				"I want to speak to a lawyer",
			},
			Responses: []string{
				"I am leaving the area as ordered",
				"I am recording from a lawful distance",
				"I prefer to remain silent",
				"I do not consent to a search of my phone",
			},
		},
	},
	TypeOther: {
		Title: "General Police Interaction Rights",
		Content: CardContent{
			Dos: []string{
				"Remain calm and polite",
				"Ask if you are free to leave",
				"Keep your hands visible",
				"Remember details of the interaction",
				"Ask for officer identification",
				"Record the interaction if you safely can",
			},
			Donts: []string{
				"Don't run or physically resist",
				"Don't consent to searches",
				"Don't answer questions beyond basic identification",
				"Don't lie or provide false documents",
				"Don't sign anything without a lawyer",
				"Don't argue about your rights on the street",
			},
			KeyRights: []string{
				"Right to remain silent",
				"Right to refuse consent to search",
				"Right to leave if not detained",
				"Right to record the interaction",
				"Right to an attorney",
				"Right to know why you are being stopped",
			},
			EmergencyContacts: []string{
				"ACLU: 1-212-549-2500",
				"Legal Aid: 211",
			},
		},
		Script: CardScript{
			Phrases: []string{
				"Am I free to leave?",
				"I am exercising my right to remain silent",
				"I do not consent to any searches",
				"I want to speak to a lawyer",
				"I am recording this interaction",
			},
			Responses: []string{
				"I understand, officer",
				"I prefer to remain silent",
				"I would like to leave now",
				"I am complying with your lawful orders",
			},
		},
	},
}
