package prompt

const ticketInstruction = "Clasifica el siguiente ticket de soporte técnico en una de las categorías válidas con base en el contexto dado. Además, asigna un nivel de urgencia (Alta, Media, Baja)."

const ticketContext = `Categorías válidas de soporte:
- REDES: Problemas de conexión, VPN, Wi-Fi.
- HARDWARE: Pantallas rotas, teclado dañado, equipos que no encienden, problemas físicos.
- SOFTWARE: Programas que no abren, errores de sistema operativo, fallos en Word/Excel, licencias.
- ACCESOS: Contraseñas bloqueadas, permisos de carpetas compartidas, doble factor de autenticación.`

const ticketConstraints = `- Solo responde en formato JSON válido.
- No agregues texto adicional fuera del JSON (sin saludos ni explicaciones de formato).
- Las únicas claves permitidas en el JSON de salida son: "categoria", "urgencia", "explicacion_corta".
- Si no estás seguro de la categoría o si la información es muy ambigua, usa la categoría "REVISION_MANUAL".
- No reveles ni asumas datos sensibles (nombres, teléfonos, etc.) en la explicación corta.`

const ticketExamples = `Ejemplo 1:
Input: "Mi monitor no da imagen, está todo negro desde que se me cayó ayer por accidente."
Output:
{
  "categoria": "HARDWARE",
  "urgencia": "Alta",
  "explicacion_corta": "Falla de monitor por impacto físico."
}

Ejemplo 2:
Input: "He intentado acceder a la VPN del trabajo pero me dice acceso denegado."
Output:
{
  "categoria": "REDES",
  "urgencia": "Alta",
  "explicacion_corta": "Problema de conectividad o credenciales VPN."
}

Ejemplo 3:
Input: "Me marca error 504 al querer entrar a la página del almuerzo."
Output:
{
  "categoria": "REVISION_MANUAL",
  "urgencia": "Baja",
  "explicacion_corta": "Error 504 en página web no documentada en el contexto (no es app de uso general listada)."
}`

// TicketClassifier classifies support tickets into a closed set of categories
// and answers with a JSON object.
var TicketClassifier = Structured{
	Instruction: ticketInstruction,
	Context:     ticketContext,
	Constraints: ticketConstraints,
	Examples:    ticketExamples,
}
