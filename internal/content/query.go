package content

// AggregateQuery запрашивает за один проход автора, детали, навыки, категории,
// проекты, опыт и загруженные файлы. Ссылки разворачиваются в объекты через ->.
const AggregateQuery = `{
  "author": *[_type == "author"][0]{
    _id, name, email, phone, image
  },
  "details": *[_type == "details"][0]{
    _id, mainrole, subrole, landinginfo, aboutheading, journey,
    author->{_id, name, email, image},
    skills[]->{_id, name, percentage, category->{_id, name}}
  },
  "skills": *[_type == "skill"]{
    _id, name, percentage, category->{_id, name}
  },
  "categories": *[_type == "skillCategory"]{
    _id, name, description,
    "skills": *[_type == "skill" && references(^._id)]{_id, name, percentage}
  },
  "projects": *[_type == "project"]{
    _id, title, description, liveLink, githubLink, image, featured,
    languages[]->{_id, name, category->{_id, name}}
  },
  "experiences": *[_type == "professionalExperience"]{
    _id, role, company, location, companywebsite, startDate, endDate, description, achievements,
    technologies[]->{_id, name, category->{_id, name}}
  },
  "uploads": *[_type == "cvUpload"]{
    _id,
    title,
    "fileUrl": file.asset->url
  }
}`
