package keyword

// UnknownResponse is returned when no keyword matches.
const UnknownResponse = "I'm still learning!"

// Responses maps normalized keywords and phrases to canned answers. Keys are
// lowercase; matching normalizes input the same way. Several keys share one
// answer on purpose, covering spelling and phrasing variants.
var Responses = map[string]string{
	// General commands
	"hello": "Hello! I'm the Moringa Courses bot. Ask me about courses (e.g., 'Tell me about the Data Science Bootcamp') or type 'help' for more options.",

	"help": "I can answer questions about Moringa School courses. Try: 'study' to see categories, or ask about 'data science', 'devops', 'generative ai', etc.",

	"study": "Categories: Software Engineering, Data Science, Cyber Security, AI, High School Bootcamp. Ask e.g. 'Tell me about the Full Stack Software Engineering Bootcamp.'",

	// Software Engineering courses
	"introduction to software engineering": "Introduction to Software Engineering — Beginner-friendly intro to HTML, CSS, JavaScript, web design and test automation. Hands-on; in-person or online; builds a technical foundation.",

	"full stack software engineering bootcamp": "Full Stack Software Engineering BootCamp — Intensive, project-based program covering Python, JavaScript, Git, and real-world web app development; prepares for careers in software and AI.",

	"full stack": "Full Stack Software Engineering BootCamp — Intensive, project-based program covering Python, JavaScript, Git, and real-world web app development; prepares for careers in software and AI.",

	"fullstack": "Full Stack Software Engineering BootCamp — Intensive, project-based program covering Python, JavaScript, Git, and real-world web app development; prepares for careers in software and AI.",

	"fundamentals of devops engineering": "Fundamentals of DevOps Engineering — Intro to DevOps concepts, CI/CD, Azure fundamentals, infrastructure as code and hands-on practice for beginners.",

	"aws devops engineering bootcamp": "AWS DevOps Engineering BootCamp — Advanced DevOps with AWS: design, automate, manage cloud systems; hands-on projects; prepares for AWS DevOps certification.",

	"devops": "We offer DevOps courses: Fundamentals of DevOps Engineering (beginner, Azure-focused) and AWS DevOps Engineering BootCamp (advanced, AWS certification prep).",

	"aws": "AWS DevOps Engineering BootCamp — Advanced DevOps with AWS: design, automate, manage cloud systems; hands-on projects; prepares for AWS DevOps certification.",

	"azure": "Fundamentals of DevOps Engineering — Intro to DevOps concepts, CI/CD, Azure fundamentals, infrastructure as code and hands-on practice for beginners.",

	"software engineering": "We offer multiple Software Engineering courses: Introduction to Software Engineering (beginner), Full Stack Software Engineering BootCamp (intensive), and DevOps programs.",

	// Data Science courses
	"data analytics with excel and power bi": "Data Analytics with Excel and Power BI — Learn Excel, Power BI, SQL and AI tools; build dashboards and business intelligence skills; includes Power BI certification.",

	"power bi": "Data Analytics with Excel and Power BI — Learn Excel, Power BI, SQL and AI tools; build dashboards and business intelligence skills; includes Power BI certification.",

	"powerbi": "Data Analytics with Excel and Power BI — Learn Excel, Power BI, SQL and AI tools; build dashboards and business intelligence skills; includes Power BI certification.",

	"excel": "Data Analytics with Excel and Power BI — Learn Excel, Power BI, SQL and AI tools; build dashboards and business intelligence skills; includes Power BI certification.",

	"data visualization with python": "Data Visualization with Python — Intro to analyzing data and creating interactive dashboards with Python; foundation for further Data Science learning.",

	"introduction to data science": "Introduction to Data Science — Beginner-friendly course in Python and Google Colab for students and professionals; no prior programming required.",

	"data science bootcamp": "Data Science BootCamp — Comprehensive program covering advanced analytics, ML/AI, data modeling with Python; recommended background in tech/math.",

	"data science": "We offer several Data Science programs: Introduction to Data Science (beginner), Data Science BootCamp (advanced), Data Analytics with Excel and Power BI, and Data Visualization with Python.",

	"data analytics": "Data Analytics with Excel and Power BI — Learn Excel, Power BI, SQL and AI tools; build dashboards and business intelligence skills; includes Power BI certification.",

	"visualization": "Data Visualization with Python — Intro to analyzing data and creating interactive dashboards with Python; foundation for further Data Science learning.",

	"visualisation": "Data Visualization with Python — Intro to analyzing data and creating interactive dashboards with Python; foundation for further Data Science learning.",

	// Cyber Security courses
	"introduction to cybersecurity": "Introduction to Cybersecurity — Foundational cybersecurity + AI course: networking, cryptography, incident response, and hands-on skills; no prior experience required.",

	"cybersecurity bootcamp": "Cybersecurity BootCamp — In-depth, hands-on labs and capstone projects preparing students for roles like SOC Analyst, Penetration Tester, or Incident Responder.",

	"cybersecurity": "We offer Cybersecurity courses: Introduction to Cybersecurity (foundational, no prerequisites) and Cybersecurity BootCamp (advanced, hands-on).",

	"cyber security": "We offer Cybersecurity courses: Introduction to Cybersecurity (foundational, no prerequisites) and Cybersecurity BootCamp (advanced, hands-on).",

	"security": "We offer Cybersecurity courses: Introduction to Cybersecurity (foundational, no prerequisites) and Cybersecurity BootCamp (advanced, hands-on).",

	"penetration": "Cybersecurity BootCamp — In-depth, hands-on labs and capstone projects preparing students for roles like SOC Analyst, Penetration Tester, or Incident Responder.",

	"pen test": "Cybersecurity BootCamp — In-depth, hands-on labs and capstone projects preparing students for roles like SOC Analyst, Penetration Tester, or Incident Responder.",

	// AI courses
	"generative ai essentials": "Generative AI Essentials — Two-week practical program teaching how to use Gen AI tools to boost productivity across functions; non-technical friendly.",

	"generative ai": "Generative AI Essentials — Two-week practical program teaching how to use Gen AI tools to boost productivity across functions; non-technical friendly.",

	"gen ai": "Generative AI Essentials — Two-week practical program teaching how to use Gen AI tools to boost productivity across functions; non-technical friendly.",

	// High School courses
	"high school holiday tech bootcamp": "High School Holiday Tech BootCamp — Ages 10–17; fun, hands-on coding experience; project-based; introduces young learners to real coding and tech careers.",

	"high school": "High School Holiday Tech BootCamp — Ages 10–17; fun, hands-on coding experience; project-based; introduces young learners to real coding and tech careers.",

	"holiday bootcamp": "High School Holiday Tech BootCamp — Ages 10–17; fun, hands-on coding experience; project-based; introduces young learners to real coding and tech careers.",

	"youth bootcamp": "High School Holiday Tech BootCamp — Ages 10–17; fun, hands-on coding experience; project-based; introduces young learners to real coding and tech careers.",
}
