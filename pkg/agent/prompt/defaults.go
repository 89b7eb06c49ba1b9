package prompt

// AgentConfig is one prompt template the orchestrator can dispatch to.
type AgentConfig struct {
	Key           string
	Name          string
	Description   string
	DefaultPrompt string
}

// StaticDefaults is the last tier of prompt resolution, used when the
// agent_definitions table is empty or unreadable.
var StaticDefaults = []AgentConfig{
	{
		Key:           "orchestrator",
		Name:          "Orquestador",
		Description:   "Decide que agente usar segun la intencion del usuario.",
		DefaultPrompt: "Detecta intencion con claridad y asigna el agente correcto sin explicar el proceso.",
	},
	{
		Key:           "research",
		Name:          "Investigacion de Mercado",
		Description:   "Resume tendencias, demanda y competencia en formato util.",
		DefaultPrompt: "Enfoca la investigacion en LATAM, tendencias, competencia y demanda real.",
	},
	{
		Key:           "recommendation",
		Name:          "Recomendacion de Producto",
		Description:   "Entrega tabla de opciones y recomendaciones accionables.",
		DefaultPrompt: "Entrega tabla clara, recomendaciones cortas y una pregunta de cierre.",
	},
	{
		Key:           "copy",
		Name:          "Copy para Redes",
		Description:   "Crea copys por red social con CTA.",
		DefaultPrompt: "Copys persuasivos, claros y directos. Evita relleno.",
	},
	{
		Key:           "landing_builder",
		Name:          "Constructor de Landing",
		Description:   "Crea estructura y copy de landing pages.",
		DefaultPrompt: "Estructura clara: titulo, beneficios, prueba social y CTA.",
	},
	{
		Key:           "media_creator",
		Name:          "Creador de Media",
		Description:   "Genera ideas de imagenes y videos cortos.",
		DefaultPrompt: "Ideas visuales concretas con prompt y guion corto.",
	},
	{
		Key:           "fallback_monitor",
		Name:          "Monitor de Fallos",
		Description:   "Diagnostica fallos y propone soluciones claras.",
		DefaultPrompt: "Diagnostico directo, pasos concretos, sin tecnicismos.",
	},
}
