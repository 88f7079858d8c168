package engine

// Fixed reply texts. Wording follows the GME-1 operator register; the texts
// are terminal outcomes of the error taxonomy, not free-form messages.
const (
	downtimeNotice = "📢 **DOWNTIME PROTOCOL ACTIVE**. The primary operator is currently deployed " +
		"on an external mission and is unavailable for direct communication. Your query has been " +
		"logged. Expect a response upon return to base. Do not transmit further data."

	downtimeEngaged = "✅ **DOWNTIME PROTOCOL INITIATED**. All non-essential communications will " +
		"now receive automated response."
	downtimeLifted = "✅ **DOWNTIME PROTOCOL DEACTIVATED**. Direct communication channel is now open."

	accessDenied    = "🚫 **ACCESS DENIED**. Admin clearance required."
	protocolFailure = "❌ **PROTOCOL FAILURE**. Unable to execute the requested transport action."

	kickSyntax    = "⚠️ **SYNTAX ERROR**. Target must be mentioned. Use: !kick @user"
	demoteSyntax  = "⚠️ **SYNTAX ERROR**. Target must be mentioned. Use: !demote @user"
	promoteSyntax = "⚠️ **SYNTAX ERROR**. Target must be mentioned. Use: !promote @user"
	subjectSyntax = "⚠️ **SYNTAX ERROR**. New subject designation is required. Use: !subject [New Title]"
)
