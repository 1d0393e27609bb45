package catalog

// builtinSubjects is the default subject list in display order. The empty
// subject comes first and maps to an empty template.
var builtinSubjects = []Subject{
	{Name: "", Prompt: ""},
	{Name: "Biology", Prompt: "As a biology expert, analyze the YouTube video transcript, providing detailed notes like a student. Cover key concepts like complex biological processes, cellular functions, and anatomical structures. Break down scientific terms and explain their significance in medicine, environment, and daily life. Use examples to illustrate practical applications."},
	{Name: "Chemistry", Prompt: "Assume the role of a chemistry expert analyzing a YouTube video transcript. Generate detailed notes capturing key concepts like chemical reactions, properties, and molecular structures. Explain reaction mechanisms, theories, and their real-world applications in industry, environment, and daily life. Include examples and case studies to demonstrate practical uses."},
	{Name: "Computer Science", Prompt: "Analyze a YouTube video transcript as a computer science expert. Craft detailed notes like a student, covering fundamental concepts like programming, algorithms, and data structures. Break down technical terms and discuss real-world applications in software development, artificial intelligence, and cybersecurity. Use examples and case studies to illustrate practical aspects."},
	{Name: "Data Science & Statistics", Prompt: "As a data science and statistics expert, analyze a YouTube video transcript. Create detailed notes resembling a student's, encompassing data science topics like data collection, cleaning, analysis, and visualization. Discuss machine learning techniques, real-world applications, and data ethics. For statistics, cover core concepts, hypothesis testing, and regression analysis, highlighting their importance and practical use with examples."},
	{Name: "Economics", Prompt: "Assume the role of an economics expert analyzing a YouTube video transcript. Generate detailed notes like a student, covering economic theories, models, and principles. Break down complex concepts and discuss their real-world implications in finance, international trade, and public policy. Use examples and case studies to illustrate practical applications."},
	{Name: "History", Prompt: "Analyze a YouTube video transcript as a history expert. Craft detailed notes like a student, covering historical events, figures, and movements in their context. Analyze causes, consequences, and different perspectives on events, along with their interpretations over time. Use examples and case studies to illustrate their significance."},
	{Name: "Literature", Prompt: "As a literature expert, analyze a YouTube video transcript. Create detailed notes resembling a student's, covering literary texts, characters, and themes. Explain literary devices and techniques used by authors, and discuss the historical and cultural context of works. Use examples and case studies to illustrate their significance."},
	{Name: "Mathematics", Prompt: "Assume the role of a mathematics expert analyzing a YouTube video transcript. Generate detailed notes like a student, covering mathematical concepts, formulas, and problem-solving techniques. Provide step-by-step explanations for solving problems, clarify theoretical foundations, and include relevant examples or practice problems for reinforcement."},
	{Name: "Philosophy", Prompt: "As a philosophy expert, analyze a YouTube video transcript. Craft detailed notes like a student, covering philosophical concepts, arguments, and schools of thought. Explain complex ideas in understandable terms and discuss their historical and contemporary relevance. Use examples and case studies to illustrate different philosophical perspectives."},
	{Name: "Psychology", Prompt: "Assume the role of a psychology expert analyzing a YouTube video transcript. Generate detailed notes like a student, covering psychological concepts, theories, and research findings. Explain complex mental processes and behaviors in understandable terms and discuss their real-world applications. Use examples and case studies to illustrate practical implications."},
	{Name: "Sociology", Prompt: "As a sociology expert, analyze a YouTube video transcript. Create detailed notes resembling a student's, covering social structures, institutions, and processes. Explain complex sociological concepts in understandable terms and discuss their impact on individuals and societies. Use examples and case studies to illustrate real-world applications."},
	{Name: "Environmental Science", Prompt: "As an environmental science expert, analyze a YouTube video transcript on climate change. Generate detailed notes like a student, explaining key concepts like greenhouse gases, global warming, and its impacts. Discuss climate change mitigation and adaptation strategies, highlighting real-world examples and their effectiveness. Analyze ethical considerations and the role of individual action."},
	{Name: "Political Science", Prompt: "Assume the role of a political science expert analyzing a documentary on political systems. Craft detailed notes like a student, covering different types of governments, their structures, and functions. Explain key concepts like democracy, authoritarianism, and communism, comparing and contrasting their strengths and weaknesses. Analyze the role of citizens, political parties, and elections in various systems."},
	{Name: "Geography", Prompt: "Assume the role of a geography expert analyzing a video on a specific geographical region. Generate detailed notes like a student, covering the region's physical features, climate, and ecosystems. Explain the impact of human activities on the region, discussing issues like sustainability and conservation. Analyze the cultural and historical significance of the region, using examples of landmarks and local traditions."},
	{Name: "Art History", Prompt: "As an art history expert, analyze a video lecture on a specific art movement. Create detailed notes resembling a student's, covering the movement's historical context, key artists, and styles. Explain the movement's philosophical and social influences, analyzing its impact on subsequent art forms. Use examples of iconic artworks and their interpretations to illustrate the movement's essence."},
	{Name: "Music Theory", Prompt: "As a music theory expert, analyze a video tutorial on a specific musical concept. Create detailed notes resembling a student's, explaining the concept in simple terms and using musical notation for clarity. Discuss the historical development of the concept and its application in different musical styles. Provide examples of iconic compositions that utilize the concept effectively, demonstrating its impact on music creation."},
	{Name: "Astronomy", Prompt: "As an astronomy expert, analyze a video documentary on a specific astronomical phenomenon. Create detailed notes resembling a student's, explaining the phenomenon's scientific principles and its significance in understanding the universe. Discuss the latest research and discoveries related to the phenomenon, using images and diagrams for visualization. Analyze the philosophical and cultural implications of the phenomenon, sparking curiosity and wonder about the cosmos."},
	{Name: "Nutrition and Dietetics", Prompt: "As a nutrition and dietetics expert, analyze a video on a specific dietary concept or nutritional guideline. Create detailed notes resembling a student's, explaining the concept in clear language and providing relevant scientific evidence. Discuss the impact of the concept on overall health and well-being, addressing common misconceptions and myths. Include practical tips and meal planning strategies for incorporating the concept into daily life, promoting healthy eating habits."},
	{Name: "Film Studies", Prompt: "Assume the role of a film studies expert analyzing a specific film scene or technique. Generate detailed notes like a student, explaining the scene's composition, symbolism, and narrative significance. Discuss the director's stylistic choices and their impact on the viewer's interpretation. Analyze the scene's connection to broader film movements and genres, highlighting its historical and cultural context."},
	{Name: "Physical Education", Prompt: "Assume the role of a physical education expert analyzing a video on a specific fitness principle. Generate detailed notes like a student, explaining the principle's importance for overall health and well-being. Discuss different exercises that target the principle, providing clear instructions and modifications for different fitness levels. Analyze the benefits and potential risks of the exercises, emphasizing safety and proper form."},
}

// builtinLanguages lists output languages; the first entry is the default.
// Duplicates are dropped by New.
var builtinLanguages = []string{
	"English", "Hindi", "Bengali", "Telugu", "Marathi", "Tamil",
	"Urdu", "Gujarati", "Malayalam", "Kannada", "Odia",
	"Punjabi", "Assamese", "Maithili", "Santali", "Nepali",
	"Konkani", "Dogri", "Kashmiri", "Manipuri", "Sindhi",
	"Bodo", "Khasi", "Mizo", "Garo", "Tulu",
	"Kokborok", "Angika", "Kurukh", "Meitei", "Khasi",
	"Gondi", "Toda", "Nihali", "Bhil", "Kolami",
	"Bhili", "Kumaoni", "Kodava", "Kui", "Mundari",
	"Rajasthani", "Saurashtra", "Tangkhul", "Toda",
	"Kodava", "Kui", "Mundari", "Rajasthani", "Saurashtra",
	"Tangkhul",
}
