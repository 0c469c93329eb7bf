package recommender

// Built-in lexicon data. Every phrase and keyword below is stored lowercase
// and accent-free so it can be compared directly against Normalize output.
// Entries are ordered: earlier entries win detection-order ties.

var symptomEntries = []SymptomEntry{
	{Key: "insomnio", Phrases: []string{
		"insomnio", "no puedo dormir", "no me puedo dormir", "desvelo", "no duermo",
		"dormir mal", "duermo muy mal", "problemas para dormir", "me cuesta trabajo dormir",
		"no pego el ojo", "no puedo pegar los ojos", "conciliar el sueno", "sueno interrumpido",
		"ando desvelado", "ando desvelada", "ando en vela", "me desvelo gacho",
		"batallo para dormir", "no agarro el sueno", "no me llega el sueno", "no me da sueno",
		"tengo sueno ligero",
	}},
	{Key: "cansancio", Phrases: []string{
		"cansancio", "fatiga", "agotamiento", "agotado", "sin fuerzas", "sin energia",
		"me siento cansado", "estoy agotado", "debilidad", "falta de vitalidad",
		"ando muy cansado", "ando muy cansada", "ando sin pila", "estoy sin bateria",
		"ando arrastrando los pies", "estoy como zombie", "ando hecho polvo",
		"me duermo parado", "ando como trapo", "no me rinde el dia", "ando todo desganado",
		"ando arrastrando la cobija", "me siento como trapo viejo",
	}},
	{Key: "estres", Phrases: []string{
		"estres", "estresado", "estresada", "nervios", "nervioso", "nerviosa", "tension nerviosa",
		"agobio", "ando muy alterado", "estoy muy angustiado", "me siento nervioso",
		"nervios de punta", "traigo los nervios de punta", "ando todo alterado",
		"me trae loco el trabajo", "tengo los nervios hechos pedazos", "inquieto", "agitado",
	}},
	{Key: "ansiedad", Phrases: []string{
		"ansiedad", "ansioso", "ansiosa", "angustia", "angustiado", "ataques de panico",
		"crisis de ansiedad", "nerviosismo", "trastorno de ansiedad",
	}},
	{Key: "depresion", Phrases: []string{
		"depresion", "deprimido", "deprimida", "tristeza", "decaimiento", "desanimo",
		"ando bien aguitado", "estoy que me lleva la tristeza",
	}},
	{Key: "energia", Phrases: []string{
		"energia", "vitalidad", "necesito vitalidad", "vigor", "dinamismo",
		"quiero mas energia", "deseo mas energia", "falta energia",
		"quiero tener mas pilas", "sentirme mas activo", "estar mas despierto",
		"tener mas resistencia", "aguantar mas", "no aguanto el dia completo",
	}},
	{Key: "memoria", Phrases: []string{
		"memoria", "concentracion", "olvidos", "falta concentracion", "se me olvida todo",
		"ando muy olvidadizo", "ando muy olvidadiza", "no me acuerdo de nada",
		"se me va el avion", "ando muy distraido", "ando muy distraida",
		"no me puedo concentrar", "pierdo el hilo", "se me va la onda", "ando despistado",
		"ando en las nubes", "tener la mente mas clara", "se me van las cosas",
	}},
	{Key: "inmunidad", Phrases: []string{
		"inmunidad", "defensas", "defensas bajas", "sistema inmune", "inmunologico",
		"reforzar defensas", "fortalecer defensas", "subir defensas", "mejorar defensas",
		"me enfermo de todo", "me pego cualquier cosa", "agarro todo lo que anda",
		"siempre ando enfermo", "siempre ando enferma", "soy muy enfermizo",
		"tengo las defensas por el suelo", "me da gripa cada mes", "evitar contagios",
		"no quiero enfermarme", "protegerme de virus",
	}},
	{Key: "gripa", Phrases: []string{
		"gripa", "gripe", "resfriado", "resfrio", "constipado", "catarro", "tos",
		"mucosidad", "mocos", "congestion nasal", "nariz tapada", "estornudos", "fiebre",
	}},
	{Key: "digestion", Phrases: []string{
		"digestion", "digestivo", "indigestion", "problemas digestivos", "digestion lenta",
		"digestion pesada", "pesadez estomacal", "mala digestion", "intestino",
		"se me atora la comida", "no digiero bien", "se me hace bola la comida",
		"me cae gorda la comida", "traigo el estomago revuelto",
		"traigo la panza hecha garras",
	}},
	{Key: "estrenimiento", Phrases: []string{
		"estrenimiento", "estrenido", "estrenida", "no puedo defecar", "intestino lento",
		"no puedo hacer del bano", "no puedo evacuar", "tengo varios dias sin ir al bano",
		"se me atora todo", "ando tapado", "ando tapada", "tengo el intestino cerrado",
	}},
	{Key: "acidez", Phrases: []string{
		"acidez", "reflujo", "agruras", "ardor estomacal", "arde el estomago",
		"me arde el estomago", "gastritis", "pirosis", "tengo agruras", "traigo acidez",
		"se me sube la comida", "me quema el estomago", "quema el estomago",
	}},
	{Key: "gases", Phrases: []string{
		"gases", "flatulencia", "gases intestinales", "ando muy gasoso", "ando muy gasosa",
		"traigo muchos gases", "se me infla la panza de gases", "ando lleno de aire",
	}},
	{Key: "nauseas", Phrases: []string{
		"nauseas", "ganas de vomitar", "vomito", "mareo", "mareos", "ando bien mareado",
	}},
	{Key: "inflamacion", Phrases: []string{
		"inflamacion", "inflamado", "inflamada", "hinchado", "hinchada", "hinchazon",
		"ando todo inflamado", "ando todo hinchado", "traigo la panza inflamada",
		"se me inflama la panza", "se me inflama todo",
	}},
	{Key: "circulacion", Phrases: []string{
		"circulacion", "mala circulacion", "varices", "piernas hinchadas", "piernas pesadas",
		"retencion de liquidos", "tobillos hinchados", "pies frios", "hemorroides",
		"se me hinchan las piernas", "traigo las piernas pesadas",
		"se me duermen las piernas", "se me entumen las piernas",
	}},
	{Key: "presion arterial", Phrases: []string{
		"presion arterial", "hipertension", "presion alta", "presion irregular",
		"tengo la presion por las nubes",
	}},
	{Key: "diabetes", Phrases: []string{
		"diabetes", "diabetico", "diabetica", "glucosa", "glucosa alta", "azucar alta",
		"azucar alto", "azucar en sangre", "glucosa en sangre", "niveles de azucar",
		"hiperglucemia", "glucemia", "insulina", "se me sube la glucosa", "soy diabetico",
		"control de azucar",
	}},
	{Key: "colesterol", Phrases: []string{
		"colesterol", "colesterol alto", "trigliceridos", "trigliceridos altos",
		"grasa en sangre", "lipidos",
	}},
	{Key: "perdida de peso", Phrases: []string{
		"bajar de peso", "perder peso", "adelgazar", "bajar kilos", "perder kilos",
		"tengo sobrepeso", "necesito bajar la panza", "quiero quitarme kilos",
		"necesito quemar grasa", "bajar la pancita", "eliminar rollitos", "bajar lonjas",
		"quitar la llanta", "eliminar michelines", "quitar chaparreras",
	}},
	{Key: "aumento de peso", Phrases: []string{
		"subir de peso", "aumentar peso", "ganar peso", "necesito ganar kilos",
		"necesito engordar", "estoy muy flaco", "estoy muy flaca", "quiero masa muscular",
		"estoy en los huesos", "parezco palillo", "estoy muy esqueletico",
		"quiero estar mas llenito", "quiero volumen", "me falta peso",
	}},
	{Key: "huesos", Phrases: []string{
		"huesos", "oseo", "calcio bajo", "osteoporosis", "huesos debiles", "reumatismo",
	}},
	{Key: "artritis", Phrases: []string{
		"artritis", "artrosis", "dolor artritico", "inflamacion articular",
	}},
	{Key: "menopausia", Phrases: []string{
		"menopausia", "bochornos", "sofocos", "calores", "cambios hormonales",
		"irregularidad menstrual", "problemas hormonales",
	}},
	{Key: "ovarios", Phrases: []string{
		"ovarios", "dolor de ovarios", "ovario inflamado", "quistes ovaricos",
		"quiste en ovario", "ovarios poliquisticos",
	}},
	{Key: "prostata", Phrases: []string{
		"prostata", "problemas de prostata", "inflamacion de prostata", "problemas urinarios",
	}},
	{Key: "rinones", Phrases: []string{
		"rinones", "dolor de rinones", "problemas renales", "infeccion renal", "cistitis",
	}},
	{Key: "higado", Phrases: []string{
		"higado", "higado graso", "hepatico", "problemas hepaticos", "limpiar higado",
		"desintoxicar", "limpiar el cuerpo", "vesicula",
	}},
	{Key: "piel", Phrases: []string{
		"piel", "dermatitis", "sarpullido", "tengo la piel irritada", "me pica mucho la piel",
		"se me irrita la piel", "me sale alergia en la piel",
	}},
	{Key: "cabello", Phrases: []string{
		"cabello", "pelo", "caida de cabello", "calvicie", "alopecia", "se me cae el cabello",
		"se me cae mucho pelo", "cabello debil",
	}},
	{Key: "respiratorio", Phrases: []string{
		"respiratorio", "pulmones", "bronquios", "asma", "me falta el aire",
		"siento opresion en el pecho", "me ahogo", "dificultad respirar",
	}},
	{Key: "afrodisiaco", Phrases: []string{
		"libido", "libido baja", "problemas sexuales", "disfuncion erectil", "potencia sexual",
		"deseo sexual", "rendimiento sexual", "perdida de libido",
	}},
	{Key: "antioxidante", Phrases: []string{
		"antioxidante", "antioxidantes", "envejecimiento", "radicales libres", "anti edad",
		"rejuvenecer", "prevenir el cancer",
	}},
	{Key: "vitaminas", Phrases: []string{
		"vitaminas", "complejo b", "multivitaminico", "deficiencia vitaminica",
		"suplementos vitaminicos",
	}},
	{Key: "apetito", Phrases: []string{
		"apetito", "no tiene apetito", "falta de apetito", "sin hambre", "no me da hambre",
	}},
	{Key: "malestar general", Phrases: []string{
		"malestar general", "me siento mal de todo", "ando bien jodido de todo",
		"traigo un desmadre en el cuerpo",
	}},
}

// painContexts disambiguate specific pain types before the generic sweep.
// Declaration order is the tie-break when several contexts match.
var painContexts = []PainContext{
	{Key: "dolor de cabeza", Phrases: []string{
		"dolor de cabeza", "me duele la cabeza", "me duele mucho la cabeza", "cabeza duele",
		"dolor en la cabeza", "migrana", "jaqueca", "cefalea", "dolor en las sienes",
		"dolor de sien", "presion en la cabeza", "punzadas en la cabeza", "cabeza pesada",
		"me parte la cabeza", "me late la cabeza", "me esta doliendo la cabeza",
		"dolor en la frente", "dolor en la nuca",
	}},
	{Key: "dolor muscular", Phrases: []string{
		"dolor muscular", "dolores musculares", "me duelen los musculos", "musculos duelen",
		"dolor en los musculos", "contractura", "tension muscular", "rigidez muscular",
		"calambre", "calambres", "tiron muscular", "musculos adoloridos", "agujetas",
		"me duele la espalda", "dolor de espalda", "espalda adolorida", "dolor en la espalda",
		"me duele el cuello", "dolor de cuello", "cuello tenso", "cuello adolorido",
		"ando todo contracturado", "se me agarrotan los musculos", "traigo los musculos tensos",
		"ando todo tieso", "me dan calambres", "se me engarrotan las piernas",
		"ando todo molido", "me siento como si me hubieran dado una golpiza",
		"tengo los musculos hechos nudo", "se me cargan los musculos", "ando todo entumido",
		"se me acalambran las piernas",
	}},
	{Key: "dolor articular", Phrases: []string{
		"dolor articular", "dolor de articulaciones", "me duelen las articulaciones",
		"articulaciones duelen", "articulaciones adoloridas", "rodillas duelen",
		"dolor en las rodillas", "codos duelen", "dolor en los codos", "rigidez articular",
		"dolor en las coyunturas", "se me inflaman las coyunturas", "dolor en las juntas",
		"me duelen los huesos", "huesos adoloridos", "se me truenan los huesos",
		"me crujen los huesos", "tengo las rodillas hechas pedazos",
		"ando tronado de las rodillas", "ando todo oxidado", "como bisagra sin aceite",
	}},
	{Key: "dolor estomacal", Phrases: []string{
		"dolor de estomago", "me duele el estomago", "estomago duele", "dolor estomacal",
		"malestar estomacal", "dolor abdominal", "dolor en el abdomen", "abdomen duele",
		"dolor en la barriga", "me duele la barriga", "estomago irritado",
		"estomago adolorido", "estomago revuelto", "se me revuelve el estomago",
	}},
	{Key: "dolor menstrual", Phrases: []string{
		"dolor menstrual", "colicos menstruales", "colicos", "dolor de regla",
		"dolor en el periodo", "dolores de menstruacion", "molestias menstruales",
	}},
	{Key: "dolor de garganta", Phrases: []string{
		"dolor de garganta", "garganta duele", "garganta irritada", "garganta inflamada",
		"dolor al tragar", "garganta rasposa", "picazon en la garganta",
	}},
	{Key: "dolor dental", Phrases: []string{
		"dolor de muela", "dolor dental", "diente duele", "muelas duelen",
		"dolor en los dientes", "sensibilidad dental",
	}},
}

// genericPainWords trigger the bare "dolor" key when no specific pain
// context matched.
var genericPainWords = []string{"dolor", "duele", "dolencia", "punzada", "adolorido"}

// overrideRules are the hardcoded keyword-to-product-name mappings for
// high-value symptoms. Product-name keywords are checked against normalized
// product names; one product per keyword, in order.
var overrideRules = []OverrideRule{
	{Keys: []string{"diabetes", "glucosa", "azucar"},
		Keywords: []string{"stevia", "canela", "cromo", "gymnema", "fenogreco"}},
	{Keys: []string{"aumento de peso"},
		Keywords: []string{"totalvit", "hbine", "proteina", "protein", "mass", "creatina"}},
	{Keys: []string{"perdida de peso"},
		Keywords: []string{"alfix", "reductor", "carbo burn", "carnitina", "garcinia", "te verde", "termogenico", "quemador", "toronja", "algas marinas"}},
	{Keys: []string{"afrodisiaco", "sexual", "libido"},
		Keywords: []string{"damiana", "maca", "guarana", "afrodisiaco", "libido"}},
	{Keys: []string{"higado", "hepatico", "desintoxicar"},
		Keywords: []string{"cardo mariano", "boldo", "alcachofa", "hepatico", "desintox"}},
	{Keys: []string{"colesterol", "trigliceridos"},
		Keywords: []string{"omega", "lecitina", "alcachofa", "cardo", "boldo"}},
	{Keys: []string{"huesos", "artritis", "osteoporosis"},
		Keywords: []string{"calcio", "magnesio", "colageno", "shark", "articular"}},
	{Keys: []string{"circulacion", "varices", "hemorroides"},
		Keywords: []string{"ginkgo", "circulacion", "centella", "castano", "rusco"}},
	{Keys: []string{"ansiedad", "nervios", "panico"},
		Keywords: []string{"valeriana", "pasiflora", "don relax", "azahares", "tila"}},
	{Keys: []string{"menopausia", "bochornos", "hormonal", "ovarios", "quistes"},
		Keywords: []string{"pm muj", "isoflavonas", "soy", "angelica", "rex ov"}},
	{Keys: []string{"antioxidante", "envejecimiento"},
		Keywords: []string{"vitamina e", "vitamina c", "colageno", "antioxidante", "omega"}},
	{Keys: []string{"vitaminas", "complejo b"},
		Keywords: []string{"vitamina b", "vitamina c", "complejo", "multivitaminico"}},
	{Keys: []string{"inmunidad"},
		Keywords: []string{"defence gold", "propoleo", "echinacea", "equinacea", "vitamina c", "zinc", "oregano"}},
	{Keys: []string{"energia", "cansancio", "fatiga"},
		Keywords: []string{"megalpiste", "ginseng", "guarana", "maca", "complejo b", "b12", "vital"}},
	{Keys: []string{"memoria"},
		Keywords: []string{"braingear", "memora plus", "ginkgo", "omega 3", "lecitina", "ginseng"}},
	{Keys: []string{"dolor de cabeza"},
		Keywords: []string{"valeriana", "azahares"}},
	{Keys: []string{"dolor estomacal", "acidez", "gastritis"},
		Keywords: []string{"copalchi", "fenogreco", "magol"}},
	{Keys: []string{"insomnio", "dormir", "sueno"},
		Keywords: []string{"valeriana", "pasiflora", "triptofano", "azahares", "melatonina"}},
	{Keys: []string{"dolor muscular"},
		Keywords: []string{"cura dol", "shark calcium", "voon flex", "juquilita", "unas gato", "tepezcohuite", "arnica", "sauce"}},
	{Keys: []string{"prostata"},
		Keywords: []string{"prostata", "saw palmetto", "pingica"}},
}

// similarSymptoms is the fallback map used when a symptom yields fewer than
// the minimum products: each listed key is tried in order.
var similarSymptoms = map[string][]string{
	"dolor de espalda":  {"dolor muscular", "dolor"},
	"dolor de hombro":   {"dolor muscular", "dolor articular", "dolor"},
	"dolor articular":   {"dolor", "inflamacion", "artritis"},
	"dolor menstrual":   {"menopausia", "dolor"},
	"dolor de garganta": {"gripa", "inmunidad"},
	"dolor dental":      {"dolor", "inflamacion"},
	"estrenimiento":     {"digestion", "dolor estomacal"},
	"gases":             {"digestion", "dolor estomacal", "inflamacion"},
	"acidez":            {"dolor estomacal", "digestion"},
	"inflamacion":       {"dolor estomacal", "digestion", "circulacion"},
	"circulacion":       {"inflamacion", "cansancio"},
	"presion arterial":  {"circulacion", "estres"},
	"inmunidad":         {"energia", "cansancio"},
	"malestar general":  {"energia", "inmunidad"},
	"apetito":           {"digestion", "vitaminas"},
	"nauseas":           {"digestion", "dolor estomacal"},
	"rinones":           {"circulacion", "inflamacion"},
}

// wellnessKeywords identify the generic wellness products used as the
// last-resort fallback and for inputs with no detectable symptoms.
var wellnessKeywords = []string{"energia", "bienestar", "salud", "vitaminas", "natural", "inmune"}

// insomniaBoost are high-specificity sleep ingredients: products carrying
// one of these in the name get a score boost for insomnia queries.
var insomniaBoost = []string{"valeriana", "pasiflora", "triptofano", "magnesio", "7 azahares", "melatonina"}

// insomniaPenalty are products that mention insomnia only incidentally.
var insomniaPenalty = []string{"sin tn sion", "ant epil", "presurex", "tiamin"}

// insomniaExclude marks products clearly unrelated to sleep; a loose keyword
// match on these is dropped entirely.
var insomniaExclude = []string{"prostata", "diabetes", "presion", "colesterol"}

// chronicConditionTerms exclude condition-specific products from generic
// pain results unless the product explicitly mentions pain too.
var chronicConditionTerms = []string{
	"diabetes", "diabetico", "glucosa", "azucar", "insulina",
	"hipertension", "presion alta", "cardiovascular",
}

var expertCases = []ExpertCase{
	{
		ID: "alcoholismo",
		Triggers: []string{
			"problemas con el alcohol", "bebo mucho", "adiccion al alcohol",
			"no puedo dejar de beber", "alcoholismo", "tomo mucho alcohol",
			"dependencia del alcohol",
		},
		Products: []string{
			"HE DT DETOX CAPSULA CANATURA C/75",
			"AB CLORHIDRATO LISINA CAPSULA CANATURA GOLD",
			"AB L TRIPTOFANO CAPSULA CANATURA GOLD C/90",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
		},
		Rationale: "El alcoholismo requiere desintoxicacion hepatica, reparacion neurologica y control de ansiedad: detox para el higado, lisina para reparacion, triptofano para serotonina y complejo B para el sistema nervioso.",
	},
	{
		ID: "adiccion_comida_chatarra",
		Triggers: []string{
			"como mucha comida chatarra", "no puedo parar de comer", "adicto a la comida",
			"como compulsivamente", "ansiedad por comer",
		},
		Products: []string{
			"AR PSYLLIUM PLANTAGO CAPSULA CANATURA GOLD",
			"CN DG MAGOL L11 CAPSULA CANATURA C/75",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
			"AB GLUCONATO MAGNESIO CAPSULA CANATURA",
		},
		Rationale: "La adiccion alimentaria involucra ansiedad y falta de saciedad: fibra para saciedad, digestivo para regular apetito, complejo B para ansiedad y magnesio para el sistema nervioso.",
	},
	{
		ID: "acne_severo",
		Triggers: []string{
			"acne severo", "granos terribles", "cara llena de granos", "acne que no se quita",
			"piel muy grasosa", "acne horrible", "granos que no se van",
		},
		Products: []string{
			"AF ZINC CAPSULA CENTRO BOTANICO MAYA",
			"AR VITAMINA A BETACAROTENO CAPSULA CANATURA GOLD",
			"HE DT DETOX CAPSULA CANATURA C/75",
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
		},
		Rationale: "El acne severo es inflamatorio y hormonal: zinc para cicatrizacion, vitamina A para regeneracion celular, detox para toxinas y omega 3 como antiinflamatorio.",
	},
	{
		ID: "caida_cabello",
		Triggers: []string{
			"se me cae el cabello", "se me cae mucho pelo", "perdida de pelo",
			"perdida de cabello", "calvicie y caida del cabello",
		},
		Products: []string{
			"AF ZINC CAPSULA CENTRO BOTANICO MAYA",
			"AF MINERALES ORGANICOS CAPSULA NUDRA C/60",
			"AR VITAMINA BIOTINA CAPSULA CANATURA GOLD",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
		},
		Rationale: "La caida de cabello involucra deficiencias nutricionales: zinc para crecimiento capilar, minerales para foliculos, biotina para fortaleza y complejo B para el metabolismo capilar.",
	},
	{
		ID: "depresion_profunda",
		Triggers: []string{
			"depresion profunda", "tristeza constante", "no tengo ganas de nada",
			"depresion severa", "muy deprimido", "estoy muy deprimido",
		},
		Products: []string{
			"AB L TRIPTOFANO CAPSULA CANATURA GOLD C/90",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
			"GLICINATO MAGNESIO CAPSULA HERBAGOLD C/60",
		},
		Rationale: "La depresion profunda involucra deficiencia de neurotransmisores: triptofano para serotonina, complejo B para energia, omega 3 para funcion cerebral y glicinato de magnesio para relajacion.",
	},
	{
		ID: "neuropatia_diabetica",
		Triggers: []string{
			"neuropatia diabetica", "dolor nervios diabetes", "entumecimiento diabetico",
			"hormigueo por diabetes", "neuropatia", "dolor neuropatico",
		},
		Products: []string{
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
			"AB CLORHIDRATO LISINA CAPSULA CANATURA GOLD",
			"AB GLUCONATO MAGNESIO CAPSULA CANATURA",
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
		},
		Rationale: "La neuropatia diabetica es dano nervioso por glucosa alta: complejo B para regeneracion nerviosa, lisina para tejidos, magnesio para funcion nerviosa y omega 3 como antiinflamatorio.",
	},
	{
		ID: "crossfit_recuperacion",
		Triggers: []string{
			"hago crossfit", "necesito recuperacion", "dolor muscular por ejercicio",
			"entrenamiento intenso", "recuperacion deportiva",
		},
		Products: []string{
			"AR JUQUILITA UNGUENTO CENTRO BOTANICO MAYA 60 GRS",
			"AB CLORHIDRATO LISINA CAPSULA CANATURA GOLD",
			"AB GLUCONATO MAGNESIO CAPSULA CANATURA",
			"AF MINERALES ORGANICOS CAPSULA NUDRA C/60",
		},
		Rationale: "El entrenamiento intenso genera micro-lesiones y perdida de electrolitos: unguento para alivio topico, lisina para sintesis proteica, magnesio para funcion muscular y minerales para cicatrizacion.",
	},
	{
		ID: "vegano_proteinas",
		Triggers: []string{
			"soy vegano", "soy vegana", "dieta vegana", "proteinas vegetales", "nutricion vegana",
		},
		Products: []string{
			"AR VITAMINA B12 COMPRIMIDO CANATURA GOLD",
			"DI MEGASOY NATURAL POLVO CANATURA 1 KG",
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
			"AF MINERALES ORGANICOS CAPSULA NUDRA C/60",
		},
		Rationale: "Las dietas veganas requieren suplementar B12 para el sistema nervioso, proteina de soya para aminoacidos completos, omega 3 para funcion cerebral y minerales organicos para hierro y zinc.",
	},
	{
		ID: "dolor_generalizado",
		Triggers: []string{
			"me duele todo el cuerpo", "me duele hasta el alma", "me truena todo el esqueleto",
			"me truena todo cuando me levanto", "tengo los musculos hechos nudos",
		},
		Products: []string{
			"AR JUQUILITA UNGUENTO CENTRO BOTANICO MAYA 60 GRS",
			"AB GLUCONATO MAGNESIO CAPSULA CANATURA",
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
		},
		Rationale: "El dolor generalizado indica inflamacion sistemica y tension muscular: unguento para alivio topico, magnesio para relajacion muscular, omega 3 como antiinflamatorio y complejo B para funcion nerviosa.",
	},
	{
		ID: "fatiga_extrema",
		Triggers: []string{
			"estoy hasta la madre de cansado", "ando hasta la madre de cansado",
			"me siento super debil", "ando muy pacheco",
		},
		Products: []string{
			"AF TOTALVIT MULTIVITAMINICO CAPSULA CENTRO BOTANICO MAYA",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
			"AF MINERALES ORGANICOS CAPSULA NUDRA C/60",
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
		},
		Rationale: "La fatiga extrema con debilidad indica deficiencias nutricionales multiples: multivitaminico para energia general, complejo B para metabolismo, minerales para funciones vitales y omega 3 para funcion cerebral.",
	},
	{
		ID: "problemas_digestivos_graves",
		Triggers: []string{
			"tengo un desmadre en el estomago", "ando bien estrenido del coraje",
			"tengo indigestion terrible", "ando con muchos gases",
		},
		Products: []string{
			"CN DG MAGOL L11 CAPSULA CANATURA C/75",
			"HE DT DETOX CAPSULA CANATURA C/75",
			"AB GLUCONATO MAGNESIO CAPSULA CANATURA",
			"AR PSYLLIUM PLANTAGO CAPSULA CANATURA GOLD",
		},
		Rationale: "Los problemas digestivos severos requieren regulacion intestinal y desintoxicacion: digestivo para flora intestinal, detox para limpiar el sistema, magnesio para transito intestinal y fibra para regulacion.",
	},
	{
		ID: "problemas_circulatorios",
		Triggers: []string{
			"me late muy rapido el corazon", "me duele el pecho del estres",
			"evitar problemas del corazon",
		},
		Products: []string{
			"AR VITAMINA OMEGA 3 CAPSULA WINIK WAY C/60",
			"AB GLUCONATO MAGNESIO CAPSULA CANATURA",
			"AF COMPLEJO B CAPSULA CENTRO BOTANICO MAYA",
		},
		Rationale: "Las molestias cardiacas asociadas a estres se apoyan con omega 3 para salud cardiovascular, magnesio para ritmo cardiaco y complejo B para el sistema nervioso.",
	},
}
