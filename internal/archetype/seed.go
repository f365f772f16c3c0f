package archetype

import "github.com/abhisek/persona/internal/i18n"

// seedArchetypes holds the display record for each of the 16 result codes.
var seedArchetypes = []Archetype{
	{
		Code:        "INTJ",
		Name:        i18n.Text{EN: "The Architect", ZH: "建筑师"},
		Tagline:     i18n.Text{EN: "Imaginative and strategic thinkers, with a plan for everything.", ZH: "富有想象力和战略性的思想家，一切皆在计划之中。"},
		Description: i18n.Text{EN: "INTJs are analytical problem-solvers who want to improve systems and processes with their innovative ideas. They have a talent for seeing possibilities for improvement, whether at work, at home, or in themselves.", ZH: "INTJ 是善于分析的问题解决者，渴望用创新理念改进系统和流程。无论是在工作、生活还是自我提升方面，他们都极具发现改进空间的天赋。"},
		Traits: []i18n.Text{
			{EN: "Strategic", ZH: "战略性"},
			{EN: "Independent", ZH: "独立"},
			{EN: "Logical", ZH: "逻辑强"},
		},
	},
	{
		Code:        "INTP",
		Name:        i18n.Text{EN: "The Logician", ZH: "逻辑学家"},
		Tagline:     i18n.Text{EN: "Innovative inventors with an unquenchable thirst for knowledge.", ZH: "具有创造力的发明家，对知识有着止不住的渴望。"},
		Description: i18n.Text{EN: "INTPs are philosophical innovators, fascinated by logical analysis, systems, and design. They are preoccupied with theory, and search for the universal law behind everything they see. They want to understand the unifying themes of life.", ZH: "INTP 是哲学式的创新者，沉迷于逻辑分析、系统和设计。他们专注于理论，试图寻找万物背后的普遍规律，渴望理解生命的统一主题。"},
		Traits: []i18n.Text{
			{EN: "Curious", ZH: "好奇"},
			{EN: "Abstract", ZH: "抽象"},
			{EN: "Objective", ZH: "客观"},
		},
	},
	{
		Code:        "ENTJ",
		Name:        i18n.Text{EN: "The Commander", ZH: "指挥官"},
		Tagline:     i18n.Text{EN: "Bold, imaginative and strong-willed leaders.", ZH: "大胆、富有想象力且意志强大的领导者。"},
		Description: i18n.Text{EN: "ENTJs are strategic leaders, motivated to organize change. They are quick to see inefficiency and conceptualize new solutions, and enjoy developing long-range plans to accomplish their vision.", ZH: "ENTJ 是战略型的领导者，热衷于组织变革。他们能迅速发现低效之处并构思新的解决方案，享受制定长期计划以实现愿景。"},
		Traits: []i18n.Text{
			{EN: "Efficient", ZH: "高效"},
			{EN: "Energetic", ZH: "精力充沛"},
			{EN: "Confident", ZH: "自信"},
		},
	},
	{
		Code:        "ENTP",
		Name:        i18n.Text{EN: "The Debater", ZH: "辩论家"},
		Tagline:     i18n.Text{EN: "Smart and curious thinkers who cannot resist an intellectual challenge.", ZH: "聪明好奇的思想者，无法拒绝智力挑战。"},
		Description: i18n.Text{EN: "ENTPs are inspired innovators, motivated to find new solutions to intellectually challenging problems. They are curious and clever, and seek to comprehend the people, systems, and principles that surround them.", ZH: "ENTP 是受启发的创新者，致力于为智力挑战寻找新方案。他们聪明好奇，试图理解周围的人、系统和原则，辩论对他们来说是一种探索方式。"},
		Traits: []i18n.Text{
			{EN: "Knowledgeable", ZH: "博学"},
			{EN: "Quick-witted", ZH: "机智"},
			{EN: "Original", ZH: "原创"},
		},
	},
	{
		Code:        "INFJ",
		Name:        i18n.Text{EN: "The Advocate", ZH: "提倡者"},
		Tagline:     i18n.Text{EN: "Quiet and mystical, yet very inspiring and tireless idealists.", ZH: "安静而神秘，同时又是鼓舞人心且不知疲倦的理想主义者。"},
		Description: i18n.Text{EN: "INFJs are creative nurturers with a strong sense of personal integrity and a drive to help others realize their potential. Creative and dedicated, they have a talent for helping others with original solutions to their personal challenges.", ZH: "INFJ 是富有创造力的培育者，拥有强烈的个人正直感，致力于帮助他人发挥潜能。他们既有创意又专注，擅长用独特的方案帮助他人克服个人挑战。"},
		Traits: []i18n.Text{
			{EN: "Insightful", ZH: "有洞察力"},
			{EN: "Altruistic", ZH: "利他"},
			{EN: "Creative", ZH: "有创意"},
		},
	},
	{
		Code:        "INFP",
		Name:        i18n.Text{EN: "The Mediator", ZH: "调停者"},
		Tagline:     i18n.Text{EN: "Poetic, kind and altruistic people, always eager to help a good cause.", ZH: "诗意、善良的利他主义者，总是热情地为正义事业提供帮助。"},
		Description: i18n.Text{EN: "INFPs are imaginative idealists, guided by their own core values and beliefs. To a Healer, possibilities are paramount; the realism of the moment is only of passing concern. They see potential for a better future, and pursue truth and meaning with their own individual flair.", ZH: "INFP 是充满想象力的理想主义者，由核心价值观指引。对他们而言，未来的可能性至高无上，当下的现实只是暂时的。他们追求真理和意义，渴望构建更美好的未来。"},
		Traits: []i18n.Text{
			{EN: "Empathetic", ZH: "共情"},
			{EN: "Open-minded", ZH: "开放"},
			{EN: "Passionate", ZH: "热情"},
		},
	},
	{
		Code:        "ENFJ",
		Name:        i18n.Text{EN: "The Protagonist", ZH: "主人公"},
		Tagline:     i18n.Text{EN: "Charismatic and inspiring leaders, able to mesmerize their listeners.", ZH: "富有魅力且鼓舞人心的领导者，有能力迷住听众。"},
		Description: i18n.Text{EN: "ENFJs are idealist organizers, driven to implement their vision of what is best for humanity. They often act as catalysts for human growth because of their ability to see potential in other people and their charisma in persuading others to their ideas.", ZH: "ENFJ 是理想主义的组织者，致力于实现对他人类最好的愿景。他们能看到他人的潜能，并用人格魅力说服他人，常被视为人类成长的催化剂。"},
		Traits: []i18n.Text{
			{EN: "Charismatic", ZH: "有魅力"},
			{EN: "Reliable", ZH: "可靠"},
			{EN: "Leader", ZH: "领袖"},
		},
	},
	{
		Code:        "ENFP",
		Name:        i18n.Text{EN: "The Campaigner", ZH: "竞选者"},
		Tagline:     i18n.Text{EN: "Enthusiastic, creative and sociable free spirits, who can always find a reason to smile.", ZH: "热情、有创造力且善于交际的自由灵魂，总能找到微笑的理由。"},
		Description: i18n.Text{EN: "ENFPs are people-centered creators with a focus on possibilities and a contagious enthusiasm for new ideas, people and activities. Energetic, warm, and passionate, ENFPs love to help other people explore their creative potential.", ZH: "ENFP 是以人为本的创造者，专注于可能性，对新理念、新朋友和新活动充满感染力。他们精力充沛、温暖热情，热爱帮助他人探索创造潜力。"},
		Traits: []i18n.Text{
			{EN: "Curious", ZH: "好奇"},
			{EN: "Observant", ZH: "善观察"},
			{EN: "Energetic", ZH: "活力"},
		},
	},
	{
		Code:        "ISTJ",
		Name:        i18n.Text{EN: "The Logistician", ZH: "物流师"},
		Tagline:     i18n.Text{EN: "Practical and fact-minded individuals, whose reliability cannot be doubted.", ZH: "务实且讲求事实的人，其可靠性不容置疑。"},
		Description: i18n.Text{EN: "ISTJs are responsible organizers, driven to create and enforce order within systems and institutions. They are neat and orderly, inside and out, and tend to have a procedure for everything they do.", ZH: "ISTJ 是负责任的组织者，致力于在系统和机构中建立秩序。他们内外整洁有序，做任何事情通常都有一套固定的程序。"},
		Traits: []i18n.Text{
			{EN: "Honest", ZH: "诚实"},
			{EN: "Dutiful", ZH: "尽责"},
			{EN: "Responsible", ZH: "负责"},
		},
	},
	{
		Code:        "ISFJ",
		Name:        i18n.Text{EN: "The Defender", ZH: "守卫者"},
		Tagline:     i18n.Text{EN: "Very dedicated and warm protectors, always ready to defend their loved ones.", ZH: "非常专注而温暖的守护者，时刻准备着保护他们爱的人。"},
		Description: i18n.Text{EN: "ISFJs are industrious caretakers, loyal to traditions and organizations. They are practical, compassionate, and caring, and are motivated to provide for others and protect them from the perils of life.", ZH: "ISFJ 是勤勉的守护者，忠于传统和组织。他们务实、富有同情心和关怀心，致力于照顾他人，保护大家免受生活中的风雨。"},
		Traits: []i18n.Text{
			{EN: "Supportive", ZH: "支持性"},
			{EN: "Patient", ZH: "耐心"},
			{EN: "Reliable", ZH: "可靠"},
		},
	},
	{
		Code:        "ESTJ",
		Name:        i18n.Text{EN: "The Executive", ZH: "总经理"},
		Tagline:     i18n.Text{EN: "Excellent administrators, unsurpassed at managing things - or people.", ZH: "出色的管理者，在管理事务或人员方面无与伦比。"},
		Description: i18n.Text{EN: "ESTJs are hardworking traditionalists, eager to take charge in organizing projects and people. Orderly, rule-abiding, and conscientious, ESTJs like to get things done, and tend to go about projects in a systematic, methodical way.", ZH: "ESTJ 是勤奋的传统主义者，渴望负责组织项目和人员。他们有序、守规矩且认真尽责，喜欢把事情做完，并倾向于用系统化、有条理的方式开展工作。"},
		Traits: []i18n.Text{
			{EN: "Dedicated", ZH: "专注"},
			{EN: "Direct", ZH: "直接"},
			{EN: "Organized", ZH: "有序"},
		},
	},
	{
		Code:        "ESFJ",
		Name:        i18n.Text{EN: "The Consul", ZH: "执政官"},
		Tagline:     i18n.Text{EN: "Extraordinarily caring, social and popular people, always eager to help.", ZH: "极有同情心、善于交际且受欢迎的人，总是热心助人。"},
		Description: i18n.Text{EN: "ESFJs are conscientious helpers, sensitive to the needs of others and energetically dedicated to their responsibilities. They are highly attuned to their emotional environment and attentive to both the feelings of others and the perception others have of them.", ZH: "ESFJ 是认真的帮助者，对他人的需求敏感，并精力充沛地致力于履行责任。他们对情绪环境高度敏感，既关注他人的感受，也关注自己在他人眼中的形象。"},
		Traits: []i18n.Text{
			{EN: "Loyal", ZH: "忠诚"},
			{EN: "Warm", ZH: "温暖"},
			{EN: "Social", ZH: "社交"},
		},
	},
	{
		Code:        "ISTP",
		Name:        i18n.Text{EN: "The Virtuoso", ZH: "鉴赏家"},
		Tagline:     i18n.Text{EN: "Bold and practical experimenters, masters of all kinds of tools.", ZH: "大胆而务实的实验家，擅长使用各种工具。"},
		Description: i18n.Text{EN: "ISTPs are observant artisans with an understanding of mechanics and an interest in troubleshooting. They approach their environments with a flexible logic, looking for practical solutions to the problems at hand.", ZH: "ISTP 是善于观察的工匠，了解机械原理并对故障排除感兴趣。他们用灵活的逻辑应对环境，寻找手头问题的实际解决方案。"},
		Traits: []i18n.Text{
			{EN: "Relaxed", ZH: "松弛"},
			{EN: "Practical", ZH: "务实"},
			{EN: "Rational", ZH: "理性"},
		},
	},
	{
		Code:        "ISFP",
		Name:        i18n.Text{EN: "The Adventurer", ZH: "探险家"},
		Tagline:     i18n.Text{EN: "Flexible and charming artists, always ready to explore and experience something new.", ZH: "灵活有魅力的艺术家，时刻准备探索和体验新鲜事物。"},
		Description: i18n.Text{EN: "ISFPs are gentle caretakers who live in the present moment and enjoy their surroundings with cheerful, low-key enthusiasm. They are flexible and spontaneous, and like to go with the flow to enjoy what life has to offer.", ZH: "ISFP 是温柔的守护者，活在当下，用愉快、低调的热情享受周围环境。他们灵活随性，喜欢顺其自然，享受生活给予的一切。"},
		Traits: []i18n.Text{
			{EN: "Charming", ZH: "迷人"},
			{EN: "Sensitive", ZH: "敏感"},
			{EN: "Artistic", ZH: "艺术"},
		},
	},
	{
		Code:        "ESTP",
		Name:        i18n.Text{EN: "The Entrepreneur", ZH: "企业家"},
		Tagline:     i18n.Text{EN: "Smart, energetic and very perceptive people, who truly enjoy living on the edge.", ZH: "聪明、精力充沛且感知力敏锐的人，真心享受边缘生活。"},
		Description: i18n.Text{EN: "ESTPs are energetic thrill-seekers who are at their best when putting out fires, whether literal or metaphorical. They bring a sense of dynamic energy to their interactions with others and the world around them.", ZH: "ESTP 是精力充沛的寻求刺激者，无论是字面意义还是比喻意义上的“救火”，都是他们的拿手好戏。他们为与世界的互动带来了充满活力的动态能量。"},
		Traits: []i18n.Text{
			{EN: "Bold", ZH: "大胆"},
			{EN: "Perceptive", ZH: "敏锐"},
			{EN: "Sociable", ZH: "善交际"},
		},
	},
	{
		Code:        "ESFP",
		Name:        i18n.Text{EN: "The Entertainer", ZH: "表演者"},
		Tagline:     i18n.Text{EN: "Spontaneous, energetic and enthusiastic people - life is never boring around them.", ZH: "自发、精力充沛且热情的人——有他们在，生活绝不无聊。"},
		Description: i18n.Text{EN: "ESFPs are vivacious entertainers who charm and engage those around them. They are spontaneous, energetic, and fun-loving, and take pleasure in the things around them: food, clothes, nature, animals, and especially people.", ZH: "ESFP 是活泼的艺人，能吸引并迷住周围的人。他们随性、精力充沛、热爱乐趣，享受生活中的一切：美食、衣服、自然、动物，尤其是人。"},
		Traits: []i18n.Text{
			{EN: "Original", ZH: "原创"},
			{EN: "Aesthetics", ZH: "审美"},
			{EN: "Showman", ZH: "表现力"},
		},
	},
}
