package chatbot

// HelpMessage lists the supported command forms. Rendered verbatim for the
// help intent.
const HelpMessage = `🤖 **AUC Archive Chatbot Help**

**Commands:**
• ` + "`list collections`" + ` - Show all available collections
• ` + "`browse [collection]`" + ` - Browse items in a collection
• ` + "`search [terms]`" + ` - Search across all collections
• ` + "`search [terms] in [collection]`" + ` - Search within specific collection
• ` + "`item [collection] [id]`" + ` - Get details for specific item
• ` + "`help`" + ` - Show this help message

**Examples:**
• ` + "`search Ottoman Empire`" + `
• ` + "`browse manuscripts`" + `
• ` + "`search architecture in photographs`" + `
• ` + "`item manuscripts 1234`" + `

**Tips:**
• Use collection names or aliases (shown in parentheses)
• Search terms can be multiple words
• Results include direct links to view items online`
